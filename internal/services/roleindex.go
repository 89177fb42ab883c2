package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"resume-analyzer/internal/catalog"
	"resume-analyzer/internal/models"
)

// RoleIndex keeps an embedded copy of every catalog role's requirement text
// in a vector collection so resumes can be ranked against all roles at once.
type RoleIndex interface {
	InitCollection() error
	IndexRoles(ctx context.Context, roles []catalog.RoleProfile) error
	SuggestRoles(ctx context.Context, resumeText string, limit int) ([]models.RoleSuggestion, error)
}

type roleIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	embedder       EmbeddingProvider
}

func NewRoleIndex(urlStr, apiKey, collectionName string, embedder EmbeddingProvider) (RoleIndex, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &roleIndex{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
		embedder:       embedder,
	}, nil
}

// InitCollection implements RoleIndex.
func (ri *roleIndex) InitCollection() error {
	ctx := context.Background()

	exists, err := ri.client.CollectionExists(ctx, ri.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Role collection already exists")
		return nil
	}

	err = ri.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: ri.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     ri.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", ri.collectionName)
	return nil
}

// IndexRoles implements RoleIndex. Point IDs are positional, so re-indexing
// the same catalog upserts in place instead of accumulating points.
func (ri *roleIndex) IndexRoles(ctx context.Context, roles []catalog.RoleProfile) error {
	points := make([]*qdrant.PointStruct, 0, len(roles))

	for i, role := range roles {
		embedding, err := ri.embedder.Embed(ctx, role.RequirementText())
		if err != nil {
			return fmt.Errorf("failed to embed role %q: %w", role.Name, err)
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(uint64(i + 1)),
			Vectors: qdrant.NewVectors(embedding...),
			Payload: qdrant.NewValueMap(map[string]interface{}{
				"role":         role.Name,
				"requirements": role.RequirementText(),
			}),
		})
	}

	_, err := ri.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: ri.collectionName,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert role points: %w", err)
	}

	log.Printf("✅ Indexed %d role profiles\n", len(points))
	return nil
}

// SuggestRoles implements RoleIndex. Scores are cosine similarities scaled to
// percentages, clamped to [0,100].
func (ri *roleIndex) SuggestRoles(ctx context.Context, resumeText string, limit int) ([]models.RoleSuggestion, error) {
	embedding, err := ri.embedder.Embed(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume text: %w", err)
	}

	searchResult, err := ri.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: ri.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search roles: %w", err)
	}

	var suggestions []models.RoleSuggestion
	for _, point := range searchResult {
		suggestion := models.RoleSuggestion{
			Score: clampPercentage(float64(point.Score) * 100),
		}

		if role, ok := point.Payload["role"]; ok {
			if val, ok := role.GetKind().(*qdrant.Value_StringValue); ok {
				suggestion.Role = val.StringValue
			}
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}
