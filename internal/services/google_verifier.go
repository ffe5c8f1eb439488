package services

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleIdentity is the subset of the verified ID-token claims the auth
// flow needs.
type GoogleIdentity struct {
	Email string
	Name  string
}

type GoogleTokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*GoogleIdentity, error)
}

type googleVerifier struct {
	audience string // OAuth client ID
}

func NewGoogleVerifier(audience string) GoogleTokenVerifier {
	return &googleVerifier{audience: audience}
}

func (v *googleVerifier) Verify(ctx context.Context, rawIDToken string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, v.audience)
	if err != nil {
		return nil, err
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("google token has no email claim")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, fmt.Errorf("google account email is not verified")
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}
	return &GoogleIdentity{Email: email, Name: name}, nil
}
