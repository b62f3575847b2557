package auth

import (
	"context"
	"strings"

	"teesheet-service/internal/domain/courseuser"
	"teesheet-service/internal/domain/systemuser"
	apperrors "teesheet-service/pkg/errors"
)

// Principal is an authenticated identity: a system admin or course staff
// account freshly loaded from the credential store.
type Principal interface {
	PrincipalID() int64
	Active() bool
}

// Store is the lookup contract a resolver needs from the credential store.
type Store[P Principal] interface {
	FindByID(ctx context.Context, id int64) (P, error)
}

// Resolver turns a bearer token into a live principal. The pipeline is
// extract -> verify -> store re-check; the token is never the source of
// truth for isActive or role, so deactivating an account invalidates all
// of its outstanding tokens on their next use.
type Resolver[P Principal] struct {
	tokens *TokenService
	store  Store[P]
}

func NewResolver[P Principal](tokens *TokenService, store Store[P]) *Resolver[P] {
	return &Resolver[P]{tokens: tokens, store: store}
}

// Resolve authenticates the Authorization header value. Store failures
// deny (fail closed) rather than fall back to the token's claims.
func (r *Resolver[P]) Resolve(ctx context.Context, authHeader string) (P, error) {
	var zero P

	token, ok := bearerToken(authHeader)
	if !ok {
		return zero, apperrors.MissingToken(msgMissingAuthorization)
	}

	claims, err := r.tokens.Verify(token)
	if err != nil {
		return zero, apperrors.InvalidToken(msgInvalidOrExpiredToken, err)
	}

	principal, err := r.store.FindByID(ctx, claims.SubjectID)
	if err != nil {
		return zero, apperrors.InactiveOrUnknown(msgInvalidOrInactiveUser)
	}
	if !principal.Active() {
		return zero, apperrors.InactiveOrUnknown(msgInvalidOrInactiveUser)
	}

	return principal, nil
}

// SystemResolver resolves system-admin principals.
type SystemResolver struct {
	inner *Resolver[*systemuser.User]
}

func NewSystemResolver(tokens *TokenService, store Store[*systemuser.User]) *SystemResolver {
	return &SystemResolver{inner: NewResolver(tokens, store)}
}

func (r *SystemResolver) Resolve(ctx context.Context, authHeader string) (*systemuser.User, error) {
	return r.inner.Resolve(ctx, authHeader)
}

// CourseResolver resolves course-staff principals and enforces the tenant
// boundary: a staff token only authorizes its own course's scope.
type CourseResolver struct {
	inner *Resolver[*courseuser.User]
}

func NewCourseResolver(tokens *TokenService, store Store[*courseuser.User]) *CourseResolver {
	return &CourseResolver{inner: NewResolver(tokens, store)}
}

// Resolve authenticates and denies with a tenant mismatch unless the
// principal belongs to expectedCourseID. Course IDs are positive, so a
// non-positive expectedCourseID can never match and always denies.
func (r *CourseResolver) Resolve(ctx context.Context, authHeader string, expectedCourseID int64) (*courseuser.User, error) {
	user, err := r.inner.Resolve(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	if expectedCourseID <= 0 || user.GolfCourseID != expectedCourseID {
		return nil, apperrors.TenantMismatch(msgWrongGolfCourse)
	}

	return user, nil
}

func bearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || !strings.EqualFold(parts[0], bearerScheme) {
		return "", false
	}

	return parts[1], true
}
