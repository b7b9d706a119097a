package graph

import (
	"github.com/dmitrijs2005/notesgraph/internal/server/models"
	"github.com/graphql-go/graphql"
)

const (
	userTypeName = "User"
	noteTypeName = "Note"
)

// types holds the object types shared between queries and mutations.
type types struct {
	node           *graphql.Interface
	user           *graphql.Object
	note           *graphql.Object
	authInfo       *graphql.Object
	protectedNote  *graphql.Union
	pageInfo       *graphql.Object
	userConnection *graphql.Object
	noteConnection *graphql.Object
}

var connectionArgsConfig = graphql.FieldConfigArgument{
	"first":  &graphql.ArgumentConfig{Type: graphql.Int},
	"after":  &graphql.ArgumentConfig{Type: graphql.String},
	"last":   &graphql.ArgumentConfig{Type: graphql.Int},
	"before": &graphql.ArgumentConfig{Type: graphql.String},
}

// NewSchema builds the executable schema bound to r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	t := r.newTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(t),
		Mutation: r.mutationType(t),
		Types:    []graphql.Type{t.user, t.note, t.authInfo},
	})
}

func (r *Resolver) newTypes() *types {
	t := &types{}

	t.node = graphql.NewInterface(graphql.InterfaceConfig{
		Name:        "Node",
		Description: "An object with a globally unique ID.",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			switch p.Value.(type) {
			case *models.User:
				return t.user
			case *models.Note:
				return t.note
			}
			return nil
		},
	})

	t.pageInfo = graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"hasNextPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"hasPreviousPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"startCursor":     &graphql.Field{Type: graphql.String},
			"endCursor":       &graphql.Field{Type: graphql.String},
		},
	})

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name:       userTypeName,
		Interfaces: []*graphql.Interface{t.node},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return ToGlobalID(userTypeName, p.Source.(*models.User).ID), nil
					},
				},
				"databaseId": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*models.User).ID, nil
					},
				},
				"username": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*models.User).UserName, nil
					},
				},
				"email": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						if e := p.Source.(*models.User).Email; e != "" {
							return e, nil
						}
						return nil, nil
					},
				},
				"notes": &graphql.Field{
					Type:    t.noteConnection,
					Args:    connectionArgsConfig,
					Resolve: r.resolveUserNotes,
				},
			}
		}),
	})

	t.note = graphql.NewObject(graphql.ObjectConfig{
		Name:       noteTypeName,
		Interfaces: []*graphql.Interface{t.node},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return ToGlobalID(noteTypeName, p.Source.(*models.Note).ID), nil
					},
				},
				"databaseId": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*models.Note).ID, nil
					},
				},
				"title": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*models.Note).Title, nil
					},
				},
				"body": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*models.Note).Body, nil
					},
				},
				"userId": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*models.Note).UserID, nil
					},
				},
				"user": &graphql.Field{
					Type:    t.user,
					Resolve: r.resolveNoteUser,
				},
			}
		}),
	})

	t.authInfo = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthInfoField",
		Fields: graphql.Fields{
			"message": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*authInfo).Message, nil
				},
			},
		},
	})

	t.protectedNote = graphql.NewUnion(graphql.UnionConfig{
		Name:  "ProtectedNote",
		Types: []*graphql.Object{t.note, t.authInfo},
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			switch p.Value.(type) {
			case *models.Note:
				return t.note
			case *authInfo:
				return t.authInfo
			}
			return nil
		},
	})

	t.userConnection = newConnectionType("User", t.user, t.pageInfo)
	t.noteConnection = newConnectionType("Note", t.note, t.pageInfo)

	return t
}

func newConnectionType(name string, node *graphql.Object, pageInfo *graphql.Object) *graphql.Object {
	edge := graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Edge",
		Fields: graphql.Fields{
			"node":   &graphql.Field{Type: node},
			"cursor": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Connection",
		Fields: graphql.Fields{
			"edges":      &graphql.Field{Type: graphql.NewList(edge)},
			"pageInfo":   &graphql.Field{Type: graphql.NewNonNull(pageInfo)},
			"totalCount": &graphql.Field{Type: graphql.Int},
		},
	})
}
