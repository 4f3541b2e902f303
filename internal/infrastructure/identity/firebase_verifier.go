package identity

import (
	"context"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// FirebaseVerifier implements domain.IdentityVerifier on top of the Firebase
// Admin SDK. The identity assertion is the ID token Firebase issues after a
// successful client-side phone sign-in; its phone_number claim is trusted.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier initializes the Firebase Admin auth client. With an
// empty credentialsFile, application default credentials apply.
func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseVerifier{client: client}, nil
}

// VerifyPhoneAssertion implements domain.IdentityVerifier
func (v *FirebaseVerifier) VerifyPhoneAssertion(ctx context.Context, assertion string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, assertion)
	if err != nil {
		return "", domain.ErrInvalidAssertion
	}
	phone, _ := token.Claims["phone_number"].(string)
	if phone == "" {
		return "", domain.ErrAssertionNoPhone
	}
	return phone, nil
}
