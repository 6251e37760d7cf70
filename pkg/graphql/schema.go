// Package graphql exposes the discovery engine over a small GraphQL
// schema: track lookup, ranked similarity, and journey pathfinding.
package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/discovery"
	"github.com/auralab/resonance/pkg/similarity"
)

// trackValue is the resolver-facing shape of a track.
type trackValue struct {
	ID     string
	Title  string
	Artist string

	Valence    *float64
	Energy     *float64
	Complexity *float64
	Tension    *float64

	Position *catalog.Position
	Degree   int
}

func newTrackValue(t *catalog.Track, degree int) trackValue {
	v := trackValue{ID: t.ID, Degree: degree}
	if t.Metadata != nil {
		v.Title = t.Metadata.Title
		v.Artist = t.Metadata.Artist
	}
	if t.Emotional != nil {
		v.Valence = &t.Emotional.Valence
		v.Energy = &t.Emotional.Energy
		v.Complexity = &t.Emotional.Complexity
		v.Tension = &t.Emotional.Tension
	}
	v.Position = t.Position
	return v
}

// GenerateSchema builds the GraphQL schema over an engine.
func GenerateSchema(engine *discovery.Engine) (graphql.Schema, error) {
	positionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Position",
		Fields: graphql.Fields{
			"x": &graphql.Field{Type: graphql.Float},
			"y": &graphql.Field{Type: graphql.Float},
			"z": &graphql.Field{Type: graphql.Float},
		},
	})

	trackType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Track",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"title":      &graphql.Field{Type: graphql.String},
			"artist":     &graphql.Field{Type: graphql.String},
			"valence":    &graphql.Field{Type: graphql.Float},
			"energy":     &graphql.Field{Type: graphql.Float},
			"complexity": &graphql.Field{Type: graphql.Float},
			"tension":    &graphql.Field{Type: graphql.Float},
			"position":   &graphql.Field{Type: positionType},
			"degree":     &graphql.Field{Type: graphql.Int},
		},
	})

	similarType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SimilarTrack",
		Fields: graphql.Fields{
			"track": &graphql.Field{Type: graphql.NewNonNull(trackType)},
			"score": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"track": &graphql.Field{
				Type: trackType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(string)
					t := engine.Catalog().Get(id)
					if t == nil {
						return nil, nil
					}
					return newTrackValue(t, engine.Graph().Degree(id)), nil
				},
			},
			"tracks": &graphql.Field{
				Type: graphql.NewList(trackType),
				Args: graphql.FieldConfigArgument{
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 100},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					limit, _ := p.Args["limit"].(int)
					tracks := engine.Catalog().Tracks()
					if limit > 0 && len(tracks) > limit {
						tracks = tracks[:limit]
					}
					out := make([]trackValue, 0, len(tracks))
					for _, t := range tracks {
						out = append(out, newTrackValue(t, engine.Graph().Degree(t.ID)))
					}
					return out, nil
				},
			},
			"similar": &graphql.Field{
				Type: graphql.NewList(similarType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(string)
					limit, _ := p.Args["limit"].(int)
					relatives := similarity.Relatives(engine.Catalog(), id, limit)
					if relatives == nil {
						return nil, fmt.Errorf("unknown track: %s", id)
					}
					out := make([]map[string]any, 0, len(relatives))
					for _, rel := range relatives {
						out = append(out, map[string]any{
							"track": newTrackValue(rel.Track, engine.Graph().Degree(rel.Track.ID)),
							"score": rel.Score,
						})
					}
					return out, nil
				},
			},
			"journey": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Args: graphql.FieldConfigArgument{
					"start": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"end":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					start, _ := p.Args["start"].(string)
					end, _ := p.Args["end"].(string)
					return engine.FindPath(start, end), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}

// ExecuteQuery executes a GraphQL query against a schema.
func ExecuteQuery(query string, schema graphql.Schema) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
	})
}

// ExecuteQueryWithVariables executes a GraphQL query with variables.
func ExecuteQueryWithVariables(query string, schema graphql.Schema, variables map[string]any) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
	})
}
