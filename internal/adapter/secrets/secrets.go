// Package secrets supplies provider API credentials. The production
// implementation reads them from AWS Secrets Manager and memoizes the
// value for a fixed TTL; a static implementation serves local runs and
// tests. Suppliers are injected via constructors rather than held in
// package globals so tests can substitute doubles.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/autorescue/flight-disruption-service/internal/infrastructure/timeutil"
)

// DefaultTTL is how long a fetched secret stays cached.
const DefaultTTL = time.Hour

// Credentials are the OAuth client credentials for the flight provider.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// CredentialSupplier supplies provider credentials on demand.
type CredentialSupplier interface {
	AmadeusCredentials(ctx context.Context) (Credentials, error)
}

// StaticSupplier returns fixed credentials, for local runs and tests.
type StaticSupplier struct {
	creds Credentials
}

// NewStaticSupplier creates a supplier returning the given credentials.
func NewStaticSupplier(clientID, clientSecret string) *StaticSupplier {
	return &StaticSupplier{creds: Credentials{ClientID: clientID, ClientSecret: clientSecret}}
}

func (s *StaticSupplier) AmadeusCredentials(ctx context.Context) (Credentials, error) {
	if s.creds.ClientID == "" || s.creds.ClientSecret == "" {
		return Credentials{}, fmt.Errorf("static credentials not configured")
	}
	return s.creds, nil
}

// secretsClient is the subset of the Secrets Manager API the supplier
// uses; the interface exists so tests can stub the AWS client.
type secretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// ManagerSupplier fetches credentials from AWS Secrets Manager, caching
// the result for a fixed TTL. Errors are not cached: a failed fetch is
// retried on the next call.
type ManagerSupplier struct {
	client     secretsClient
	secretName string
	ttl        time.Duration
	clock      timeutil.Clock

	mu        sync.Mutex
	cached    Credentials
	fetchedAt time.Time
	hasValue  bool
}

// ManagerConfig holds Secrets Manager supplier settings.
type ManagerConfig struct {
	SecretName string
	Region     string
	TTL        time.Duration
}

// NewManagerSupplier builds a ManagerSupplier from the default AWS config
// chain.
func NewManagerSupplier(ctx context.Context, cfg ManagerConfig) (*ManagerSupplier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newManagerSupplier(secretsmanager.NewFromConfig(awsCfg), cfg, timeutil.NewRealClock()), nil
}

// newManagerSupplier wires an explicit client and clock, for tests.
func newManagerSupplier(client secretsClient, cfg ManagerConfig, clock timeutil.Clock) *ManagerSupplier {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ManagerSupplier{
		client:     client,
		secretName: cfg.SecretName,
		ttl:        ttl,
		clock:      clock,
	}
}

// AmadeusCredentials returns the cached credentials, refetching from
// Secrets Manager once the TTL has elapsed.
func (s *ManagerSupplier) AmadeusCredentials(ctx context.Context) (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.hasValue && now.Sub(s.fetchedAt) < s.ttl {
		return s.cached, nil
	}

	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretName),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("fetch secret %s: %w", s.secretName, err)
	}
	if out.SecretString == nil {
		return Credentials{}, fmt.Errorf("secret %s has no string value", s.secretName)
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(*out.SecretString), &creds); err != nil {
		return Credentials{}, fmt.Errorf("decode secret %s: %w", s.secretName, err)
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return Credentials{}, fmt.Errorf("secret %s is missing client_id or client_secret", s.secretName)
	}

	s.cached = creds
	s.fetchedAt = now
	s.hasValue = true
	return creds, nil
}

// Ensure implementations satisfy CredentialSupplier at compile time.
var (
	_ CredentialSupplier = (*StaticSupplier)(nil)
	_ CredentialSupplier = (*ManagerSupplier)(nil)
)
