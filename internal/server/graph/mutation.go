package graph

import (
	"github.com/graphql-go/graphql"
)

func (r *Resolver) mutationType(t *types) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: graphql.NewObject(graphql.ObjectConfig{
					Name: "CreateUser",
					Fields: graphql.Fields{
						"ok":   &graphql.Field{Type: graphql.Boolean},
						"user": &graphql.Field{Type: t.user},
					},
				}),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.String},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveCreateUser,
			},
			"authenticate": &graphql.Field{
				Type: graphql.NewObject(graphql.ObjectConfig{
					Name: "AuthMutation",
					Fields: graphql.Fields{
						"accessToken":  &graphql.Field{Type: graphql.String},
						"refreshToken": &graphql.Field{Type: graphql.String},
					},
				}),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveAuthenticate,
			},
			"refreshToken": &graphql.Field{
				Type: graphql.NewObject(graphql.ObjectConfig{
					Name: "RefreshMutation",
					Fields: graphql.Fields{
						"newToken": &graphql.Field{Type: graphql.String},
					},
				}),
				Args: graphql.FieldConfigArgument{
					"refreshToken": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveRefreshToken,
			},
			"createNote": &graphql.Field{
				Type: graphql.NewObject(graphql.ObjectConfig{
					Name: "CreateNote",
					Fields: graphql.Fields{
						"note": &graphql.Field{Type: t.protectedNote},
					},
				}),
				Args: graphql.FieldConfigArgument{
					"title":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"body":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"token":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveCreateNote,
			},
			"updateNote": &graphql.Field{
				Type: graphql.NewObject(graphql.ObjectConfig{
					Name: "UpdateNote",
					Fields: graphql.Fields{
						"ok":   &graphql.Field{Type: graphql.Boolean},
						"note": &graphql.Field{Type: t.note},
					},
				}),
				Args: graphql.FieldConfigArgument{
					"noteId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"title":  &graphql.ArgumentConfig{Type: graphql.String},
					"body":   &graphql.ArgumentConfig{Type: graphql.String},
					"token":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUpdateNote,
			},
			"deleteNote": &graphql.Field{
				Type: graphql.NewObject(graphql.ObjectConfig{
					Name: "DeleteNote",
					Fields: graphql.Fields{
						"ok":   &graphql.Field{Type: graphql.Boolean},
						"note": &graphql.Field{Type: t.note},
					},
				}),
				Args: graphql.FieldConfigArgument{
					"noteId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"token":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveDeleteNote,
			},
		},
	})
}

func (r *Resolver) resolveCreateUser(p graphql.ResolveParams) (interface{}, error) {
	username, _ := p.Args["username"].(string)
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	user, err := r.users.Register(p.Context, username, email, password)
	if err != nil {
		return nil, r.fail(p.Context, err)
	}

	r.log.Info(p.Context, "user created", "user_id", user.ID)
	return map[string]interface{}{"ok": true, "user": user}, nil
}

func (r *Resolver) resolveAuthenticate(p graphql.ResolveParams) (interface{}, error) {
	username, _ := p.Args["username"].(string)
	password, _ := p.Args["password"].(string)

	pair, err := r.users.Authenticate(p.Context, username, password)
	if err != nil {
		return nil, r.fail(p.Context, err)
	}

	return map[string]interface{}{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, nil
}

// resolveRefreshToken prefers the header token and falls back to the argument.
func (r *Resolver) resolveRefreshToken(p graphql.ResolveParams) (interface{}, error) {
	token := BearerTokenFromContext(p.Context)
	if token == "" {
		token, _ = p.Args["refreshToken"].(string)
	}

	newToken, err := r.users.RefreshToken(token)
	if err != nil {
		return nil, r.fail(p.Context, err)
	}

	return map[string]interface{}{"newToken": newToken}, nil
}

func (r *Resolver) resolveCreateNote(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.authorize(p.Context); err != nil {
		return nil, r.fail(p.Context, err)
	}

	title, _ := p.Args["title"].(string)
	body, _ := p.Args["body"].(string)
	userID, _ := p.Args["userId"].(int)

	note, err := r.notes.Create(p.Context, title, body, int64(userID))
	if err != nil {
		return nil, r.fail(p.Context, err)
	}

	r.log.Info(p.Context, "note created", "note_id", note.ID, "user_id", note.UserID)
	return map[string]interface{}{"note": note}, nil
}

func (r *Resolver) resolveUpdateNote(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.authorize(p.Context); err != nil {
		return nil, r.fail(p.Context, err)
	}

	raw, _ := p.Args["noteId"].(string)
	id, err := parseNoteID(raw)
	if err != nil {
		return nil, err
	}

	var title, body *string
	if v, ok := p.Args["title"].(string); ok {
		title = &v
	}
	if v, ok := p.Args["body"].(string); ok {
		body = &v
	}

	note, err := r.notes.Update(p.Context, id, title, body)
	if err != nil {
		return nil, r.fail(p.Context, err)
	}

	r.log.Info(p.Context, "note updated", "note_id", note.ID)
	return map[string]interface{}{"ok": true, "note": note}, nil
}

func (r *Resolver) resolveDeleteNote(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.authorize(p.Context); err != nil {
		return nil, r.fail(p.Context, err)
	}

	id, _ := p.Args["noteId"].(int)

	note, err := r.notes.Delete(p.Context, int64(id))
	if err != nil {
		return nil, r.fail(p.Context, err)
	}

	r.log.Info(p.Context, "note deleted", "note_id", note.ID)
	return map[string]interface{}{"ok": true, "note": note}, nil
}
