package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/notesgraph/internal/common"
)

const usersPageSize = 100

const noteFields = "databaseId title body userId"

const protectedNoteFields = "__typename ... on Note { " + noteFields + " } ... on AuthInfoField { message }"

type Client struct {
	endpoint   string
	httpClient *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// New returns a client for the GraphQL endpoint at endpoint. Each request is
// bounded by timeout.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []*GraphQLError `json:"errors"`
}

// do posts one GraphQL operation and decodes its data member into out.
// The first GraphQL error, if any, is returned through mapError.
func (c *Client) do(ctx context.Context, token, query string, vars map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if len(r.Errors) > 0 {
		return mapError(r.Errors[0])
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(r.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func (c *Client) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// authed runs call with the current access token. If the server rejects the
// token, the access token is refreshed once and call is repeated.
func (c *Client) authed(ctx context.Context, call func(token string) error) error {
	access, _ := c.tokens()
	if access == "" {
		return ErrUnauthorized
	}

	err := call(access)
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}

	if rerr := c.Refresh(ctx); rerr != nil {
		return err
	}

	access, _ = c.tokens()
	return call(access)
}

// LoggedIn reports whether the client holds an access token.
func (c *Client) LoggedIn() bool {
	access, _ := c.tokens()
	return access != ""
}

// Logout drops both tokens. Tokens are stateless, so nothing is sent to the server.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.refreshToken = ""
}

// Register creates an account. An empty email is sent as null.
func (c *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	vars := map[string]interface{}{"username": username, "password": password}
	if email != "" {
		vars["email"] = email
	}

	var out struct {
		CreateUser struct {
			User *User `json:"user"`
		} `json:"createUser"`
	}
	err := c.do(ctx, "", `mutation Register($username: String!, $email: String, $password: String!) {
  createUser(username: $username, email: $email, password: $password) { ok user { id databaseId username } }
}`, vars, &out)
	if err != nil {
		return nil, err
	}
	if out.CreateUser.User == nil {
		return nil, errors.New("server returned no user")
	}
	return out.CreateUser.User, nil
}

// Login authenticates and keeps the issued token pair.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var out struct {
		Authenticate struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		} `json:"authenticate"`
	}
	err := c.do(ctx, "", `mutation Login($username: String!, $password: String!) {
  authenticate(username: $username, password: $password) { accessToken refreshToken }
}`, map[string]interface{}{"username": username, "password": password}, &out)
	if err != nil {
		return err
	}
	if out.Authenticate.AccessToken == "" {
		return ErrUnauthorized
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = out.Authenticate.AccessToken
	c.refreshToken = out.Authenticate.RefreshToken
	return nil
}

// Refresh exchanges the refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context) error {
	_, refresh := c.tokens()
	if refresh == "" {
		return ErrUnauthorized
	}

	var out struct {
		RefreshToken struct {
			NewToken string `json:"newToken"`
		} `json:"refreshToken"`
	}
	err := c.do(ctx, "", `mutation Refresh($refreshToken: String) {
  refreshToken(refreshToken: $refreshToken) { newToken }
}`, map[string]interface{}{"refreshToken": refresh}, &out)
	if err != nil {
		return err
	}
	if out.RefreshToken.NewToken == "" {
		return ErrUnauthorized
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = out.RefreshToken.NewToken
	return nil
}

// FindUser walks allUsers until it meets username.
func (c *Client) FindUser(ctx context.Context, username string) (*User, error) {
	var after interface{}
	for {
		var out struct {
			AllUsers struct {
				Edges []struct {
					Node User `json:"node"`
				} `json:"edges"`
				PageInfo struct {
					HasNextPage bool   `json:"hasNextPage"`
					EndCursor   string `json:"endCursor"`
				} `json:"pageInfo"`
			} `json:"allUsers"`
		}
		err := c.do(ctx, "", `query Users($first: Int, $after: String) {
  allUsers(first: $first, after: $after) { edges { node { id databaseId username } } pageInfo { hasNextPage endCursor } }
}`, map[string]interface{}{"first": usersPageSize, "after": after}, &out)
		if err != nil {
			return nil, err
		}

		for _, e := range out.AllUsers.Edges {
			if e.Node.Username == username {
				u := e.Node
				return &u, nil
			}
		}

		if !out.AllUsers.PageInfo.HasNextPage {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
		}
		after = out.AllUsers.PageInfo.EndCursor
	}
}

// Notes returns up to first notes of the user with the given global id,
// starting after the cursor. An empty cursor starts from the beginning.
func (c *Client) Notes(ctx context.Context, userID string, first int, after string) (*NotesPage, error) {
	vars := map[string]interface{}{"id": userID, "first": first}
	if after != "" {
		vars["after"] = after
	}

	var out struct {
		Node *struct {
			Notes struct {
				TotalCount int `json:"totalCount"`
				Edges      []struct {
					Node Note `json:"node"`
				} `json:"edges"`
				PageInfo struct {
					HasNextPage bool   `json:"hasNextPage"`
					EndCursor   string `json:"endCursor"`
				} `json:"pageInfo"`
			} `json:"notes"`
		} `json:"node"`
	}
	err := c.do(ctx, "", `query Notes($id: ID!, $first: Int, $after: String) {
  node(id: $id) { ... on User { notes(first: $first, after: $after) { totalCount edges { node { `+noteFields+` } } pageInfo { hasNextPage endCursor } } } }
}`, vars, &out)
	if err != nil {
		return nil, err
	}
	if out.Node == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	page := &NotesPage{
		Total:     out.Node.Notes.TotalCount,
		EndCursor: out.Node.Notes.PageInfo.EndCursor,
		HasNext:   out.Node.Notes.PageInfo.HasNextPage,
	}
	for _, e := range out.Node.Notes.Edges {
		page.Notes = append(page.Notes, e.Node)
	}
	return page, nil
}

// Note fetches a single note through the token-gated getNote query.
func (c *Client) Note(ctx context.Context, id int) (*Note, error) {
	var note *Note
	err := c.authed(ctx, func(token string) error {
		var out struct {
			GetNote *protectedNote `json:"getNote"`
		}
		err := c.do(ctx, token, `query Note($id: Int) { getNote(id: $id) { `+protectedNoteFields+` } }`,
			map[string]interface{}{"id": id}, &out)
		if err != nil {
			return err
		}
		note, err = out.GetNote.toNote()
		return err
	})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: note %d", ErrNotFound, id)
	}
	return note, nil
}

func (c *Client) CreateNote(ctx context.Context, title, body string, userID int) (*Note, error) {
	var note *Note
	err := c.authed(ctx, func(token string) error {
		var out struct {
			CreateNote struct {
				Note *protectedNote `json:"note"`
			} `json:"createNote"`
		}
		err := c.do(ctx, token, `mutation CreateNote($title: String!, $body: String!, $userId: Int!) {
  createNote(title: $title, body: $body, userId: $userId) { note { `+protectedNoteFields+` } }
}`, map[string]interface{}{"title": title, "body": body, "userId": userID}, &out)
		if err != nil {
			return err
		}
		note, err = out.CreateNote.Note.toNote()
		return err
	})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, errors.New("server returned no note")
	}
	return note, nil
}

// UpdateNote changes the non-nil fields of a note. Omitted fields are left
// out of the mutation entirely so the server keeps their stored values.
func (c *Client) UpdateNote(ctx context.Context, id int, title, body *string) (*Note, error) {
	decls := []string{"$noteId: String!"}
	args := []string{"noteId: $noteId"}
	vars := map[string]interface{}{"noteId": strconv.Itoa(id)}
	if title != nil {
		decls = append(decls, "$title: String")
		args = append(args, "title: $title")
		vars["title"] = *title
	}
	if body != nil {
		decls = append(decls, "$body: String")
		args = append(args, "body: $body")
		vars["body"] = *body
	}
	query := fmt.Sprintf("mutation UpdateNote(%s) { updateNote(%s) { ok note { %s } } }",
		strings.Join(decls, ", "), strings.Join(args, ", "), noteFields)

	var out struct {
		UpdateNote struct {
			Note *Note `json:"note"`
		} `json:"updateNote"`
	}
	err := c.authed(ctx, func(token string) error {
		return c.do(ctx, token, query, vars, &out)
	})
	if err != nil {
		return nil, err
	}
	if out.UpdateNote.Note == nil {
		return nil, fmt.Errorf("%w: note %d", ErrNotFound, id)
	}
	return out.UpdateNote.Note, nil
}

// DeleteNote removes a note and returns what it held.
func (c *Client) DeleteNote(ctx context.Context, id int) (*Note, error) {
	var out struct {
		DeleteNote struct {
			Note *Note `json:"note"`
		} `json:"deleteNote"`
	}
	err := c.authed(ctx, func(token string) error {
		return c.do(ctx, token, `mutation DeleteNote($noteId: Int!) { deleteNote(noteId: $noteId) { ok note { `+noteFields+` } } }`,
			map[string]interface{}{"noteId": id}, &out)
	})
	if err != nil {
		return nil, err
	}
	if out.DeleteNote.Note == nil {
		return nil, fmt.Errorf("%w: note %d", ErrNotFound, id)
	}
	return out.DeleteNote.Note, nil
}
