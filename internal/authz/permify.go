// internal/authz/permify.go
package authz

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pservice "buf.build/gen/go/permifyco/permify/protocolbuffers/go/base/v1"
	v1 "buf.build/gen/go/permifyco/permify/protocolbuffers/go/base/v1"
	permify_grpc "github.com/Permify/permify-go/grpc"
	"github.com/google/uuid"
)

// PermifySource is a PermissionSource backed by an external Permify
// deployment. Companies are modeled as "company" entities and users as
// "user" subjects; the permission names match the seeded catalog.
type PermifySource struct {
	client        *permify_grpc.Client
	tenant        string
	schemaVersion string
	snapToken     string
	depth         int32
}

// WithTenant sets the Permify tenant for the source
func WithTenant(tenant string) func(*PermifySource) {
	return func(s *PermifySource) {
		s.tenant = tenant
	}
}

// WithSchemaVersion sets the schema version for the source
func WithSchemaVersion(schemaVersion string) func(*PermifySource) {
	return func(s *PermifySource) {
		s.schemaVersion = schemaVersion
	}
}

// WithSnapToken sets the snap token for the source
func WithSnapToken(snapToken string) func(*PermifySource) {
	return func(s *PermifySource) {
		s.snapToken = snapToken
	}
}

// WithDepth sets the check depth for the source
func WithDepth(depth int32) func(*PermifySource) {
	return func(s *PermifySource) {
		s.depth = depth
	}
}

// NewPermifySource connects to a Permify host and returns a source
func NewPermifySource(host string, options ...func(*PermifySource)) (*PermifySource, error) {
	client, err := permify_grpc.NewClient(
		permify_grpc.Config{
			Endpoint: host,
		},
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)

	if err != nil {
		return nil, err
	}

	source := &PermifySource{client: client, schemaVersion: "v1", depth: 50}
	for _, o := range options {
		o(source)
	}

	if source.tenant == "" {
		source.tenant = "t1"
	}

	return source, nil
}

// Check implements PermissionSource.
func (s *PermifySource) Check(ctx context.Context, userID, companyID uuid.UUID, permission string) (bool, error) {
	cr, err := s.client.Permission.Check(ctx, &v1.PermissionCheckRequest{
		TenantId: s.tenant,
		Metadata: &v1.PermissionCheckRequestMetadata{
			SnapToken:     s.snapToken,
			SchemaVersion: s.schemaVersion,
			Depth:         s.depth,
		},
		Entity: &v1.Entity{
			Type: "company",
			Id:   companyID.String(),
		},
		Permission: permission,
		Subject: &v1.Subject{
			Type: "user",
			Id:   userID.String(),
		},
	})
	if err != nil {
		return false, err
	}

	if cr.Can == pservice.CheckResult_CHECK_RESULT_ALLOWED {
		return true, nil
	}

	return false, nil
}

// WriteMembership mirrors a membership into Permify as a relationship tuple.
func (s *PermifySource) WriteMembership(ctx context.Context, companyID, userID uuid.UUID, relation string) error {
	_, err := s.client.Data.WriteRelationships(ctx, &v1.RelationshipWriteRequest{
		TenantId: s.tenant,
		Metadata: &v1.RelationshipWriteRequestMetadata{
			SchemaVersion: s.schemaVersion,
		},
		Tuples: []*v1.Tuple{
			{
				Entity: &v1.Entity{
					Type: "company",
					Id:   companyID.String(),
				},
				Relation: relation,
				Subject: &v1.Subject{
					Type: "user",
					Id:   userID.String(),
				},
			},
		},
	})
	if err != nil {
		return err
	}

	return nil
}

// DeleteMembership removes a membership tuple from Permify.
func (s *PermifySource) DeleteMembership(ctx context.Context, companyID, userID uuid.UUID, relation string) error {
	_, err := s.client.Data.DeleteRelationships(ctx, &v1.RelationshipDeleteRequest{
		TenantId: s.tenant,
		Filter: &v1.TupleFilter{
			Entity: &v1.EntityFilter{
				Type: "company",
				Ids:  []string{companyID.String()},
			},
			Relation: relation,
			Subject: &v1.SubjectFilter{
				Type: "user",
				Ids:  []string{userID.String()},
			},
		},
	})
	if err != nil {
		return err
	}

	return nil
}
