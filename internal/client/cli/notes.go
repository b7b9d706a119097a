package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/notesgraph/internal/client/client"
)

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

// noteID takes the id from the first argument or asks for it.
func (a *App) noteID(args []string) (int, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		if raw, err = getSimpleText(a.reader, "Enter note id", a.out); err != nil {
			return 0, err
		}
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", raw)
	}
	return id, nil
}

func (a *App) printNote(n *client.Note) {
	fmt.Fprintf(a.out, "#%d %s\n", n.ID, n.Title)
	if n.Body != "" {
		fmt.Fprintln(a.out, n.Body)
	}
}

// List prints every note of the logged-in user, fetching PageSize at a time.
func (a *App) List(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var (
		after string
		total int
	)
	for {
		page, err := a.client.Notes(ctx, a.user.ID, a.config.PageSize, after)
		if err != nil {
			return err
		}
		total = page.Total

		for _, n := range page.Notes {
			fmt.Fprintf(a.out, "#%-5d %s\n", n.ID, n.Title)
		}

		if !page.HasNext || page.EndCursor == "" {
			break
		}
		after = page.EndCursor
	}

	fmt.Fprintf(a.out, "%d note(s)\n", total)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.noteID(args)
	if err != nil {
		return err
	}

	n, err := a.client.Note(ctx, id)
	if err != nil {
		return err
	}

	a.printNote(n)
	return nil
}

// Add creates a note owned by the logged-in user.
func (a *App) Add(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}

	body, err := getMultiline(a.reader, "Enter text", a.out)
	if err != nil {
		return err
	}

	n, err := a.client.CreateNote(ctx, title, body, a.user.DatabaseID)
	if err != nil {
		return err
	}

	a.logger.Debug(ctx, "note created", "id", n.ID)
	fmt.Fprintf(a.out, "Created note #%d\n", n.ID)
	return nil
}

// Edit changes the title and/or body of a note. An empty answer keeps the
// stored value.
func (a *App) Edit(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.noteID(args)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter new title (empty keeps current)", a.out)
	if err != nil {
		return err
	}

	body, err := getMultiline(a.reader, "Enter new text (empty keeps current)", a.out)
	if err != nil {
		return err
	}

	var titlePtr, bodyPtr *string
	if title != "" {
		titlePtr = &title
	}
	if body != "" {
		bodyPtr = &body
	}
	if titlePtr == nil && bodyPtr == nil {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	n, err := a.client.UpdateNote(ctx, id, titlePtr, bodyPtr)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated note #%d\n", n.ID)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.noteID(args)
	if err != nil {
		return err
	}

	n, err := a.client.DeleteNote(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted note #%d %s\n", n.ID, n.Title)
	return nil
}
