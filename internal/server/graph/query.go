package graph

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/dmitrijs2005/notesgraph/internal/server/models"
	"github.com/graphql-go/graphql"
)

func (r *Resolver) queryType(t *types) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"node": &graphql.Field{
				Type: t.node,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveNode,
			},
			"allUsers": &graphql.Field{
				Type:    t.userConnection,
				Args:    connectionArgsConfig,
				Resolve: r.resolveAllUsers,
			},
			"allNotes": &graphql.Field{
				Type:    t.noteConnection,
				Args:    connectionArgsConfig,
				Resolve: r.resolveAllNotes,
			},
			"getNote": &graphql.Field{
				Type: t.protectedNote,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.Int},
					"token": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveGetNote,
			},
		},
	})
}

// resolveNode returns null for ids that are malformed or point nowhere.
func (r *Resolver) resolveNode(p graphql.ResolveParams) (interface{}, error) {
	globalID, _ := p.Args["id"].(string)
	typ, id, err := FromGlobalID(globalID)
	if err != nil {
		return nil, nil
	}

	var node interface{}
	switch typ {
	case userTypeName:
		node, err = r.users.GetByID(p.Context, id)
	case noteTypeName:
		node, err = r.notes.Get(p.Context, id)
	default:
		return nil, nil
	}

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, r.fail(p.Context, err)
	}
	return node, nil
}

func (r *Resolver) resolveAllUsers(p graphql.ResolveParams) (interface{}, error) {
	return r.connection(p.Context, p.Args, r.users.Count,
		func(ctx context.Context, limit, offset int) ([]interface{}, error) {
			users, err := r.users.List(ctx, limit, offset)
			return usersToNodes(users), err
		})
}

func (r *Resolver) resolveAllNotes(p graphql.ResolveParams) (interface{}, error) {
	return r.connection(p.Context, p.Args, r.notes.Count,
		func(ctx context.Context, limit, offset int) ([]interface{}, error) {
			notes, err := r.notes.List(ctx, limit, offset)
			return notesToNodes(notes), err
		})
}

func (r *Resolver) resolveUserNotes(p graphql.ResolveParams) (interface{}, error) {
	user := p.Source.(*models.User)
	return r.connection(p.Context, p.Args,
		func(ctx context.Context) (int, error) {
			return r.notes.CountByUser(ctx, user.ID)
		},
		func(ctx context.Context, limit, offset int) ([]interface{}, error) {
			notes, err := r.notes.ListByUser(ctx, user.ID, limit, offset)
			return notesToNodes(notes), err
		})
}

func (r *Resolver) resolveNoteUser(p graphql.ResolveParams) (interface{}, error) {
	note := p.Source.(*models.Note)
	user, err := r.users.GetByID(p.Context, note.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, r.fail(p.Context, err)
	}
	return user, nil
}

// resolveGetNote authenticates with the request header; the token argument is
// accepted for compatibility and ignored. Authentication failures produce the
// AuthInfoField variant rather than an error.
func (r *Resolver) resolveGetNote(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.authorize(p.Context); err != nil {
		return &authInfo{Message: "Authentication failure: " + unauthenticatedMessage(err)}, nil
	}

	id, ok := p.Args["id"].(int)
	if !ok {
		return nil, nil
	}

	note, err := r.notes.Get(p.Context, int64(id))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, r.fail(p.Context, err)
	}
	return note, nil
}
