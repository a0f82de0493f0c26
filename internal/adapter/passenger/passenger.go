// Package passenger supplies the traveler profile a booking is made
// for. The production implementation reads a profile document from S3
// and memoizes it for a fixed TTL; a static implementation serves local
// runs and tests.
package passenger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/timeutil"
)

// DefaultTTL is how long a fetched profile stays cached.
const DefaultTTL = time.Hour

// StaticSupplier returns a fixed passenger, for local runs and tests.
type StaticSupplier struct {
	info domain.PassengerInfo
}

// NewStaticSupplier creates a supplier returning the given passenger.
func NewStaticSupplier(info domain.PassengerInfo) *StaticSupplier {
	return &StaticSupplier{info: info}
}

func (s *StaticSupplier) PassengerInfo(ctx context.Context) (domain.PassengerInfo, error) {
	if s.info.FirstName == "" && s.info.LastName == "" {
		return domain.PassengerInfo{}, fmt.Errorf("static passenger info not configured")
	}
	return s.info, nil
}

// objectClient is the subset of the S3 API the supplier uses; the
// interface exists so tests can stub the AWS client.
type objectClient interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// profileDocument is the stored shape of the profile object.
type profileDocument struct {
	Name struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"name"`
	Contact struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"contact"`
}

// S3Supplier fetches the traveler profile from S3, caching the result
// for a fixed TTL. Errors are not cached: a failed fetch is retried on
// the next call.
type S3Supplier struct {
	client objectClient
	bucket string
	key    string
	ttl    time.Duration
	clock  timeutil.Clock

	mu        sync.Mutex
	cached    domain.PassengerInfo
	fetchedAt time.Time
	hasValue  bool
}

// S3Config holds S3 supplier settings.
type S3Config struct {
	Bucket string
	Key    string
	Region string
	TTL    time.Duration
}

// NewS3Supplier builds an S3Supplier from the default AWS config chain.
func NewS3Supplier(ctx context.Context, cfg S3Config) (*S3Supplier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newS3Supplier(s3.NewFromConfig(awsCfg), cfg, timeutil.NewRealClock()), nil
}

// newS3Supplier wires an explicit client and clock, for tests.
func newS3Supplier(client objectClient, cfg S3Config, clock timeutil.Clock) *S3Supplier {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &S3Supplier{
		client: client,
		bucket: cfg.Bucket,
		key:    cfg.Key,
		ttl:    ttl,
		clock:  clock,
	}
}

// PassengerInfo returns the cached profile, refetching from S3 once the
// TTL has elapsed.
func (s *S3Supplier) PassengerInfo(ctx context.Context) (domain.PassengerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.hasValue && now.Sub(s.fetchedAt) < s.ttl {
		return s.cached, nil
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return domain.PassengerInfo{}, fmt.Errorf("fetch profile s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return domain.PassengerInfo{}, fmt.Errorf("read profile s3://%s/%s: %w", s.bucket, s.key, err)
	}

	var doc profileDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.PassengerInfo{}, fmt.Errorf("decode profile s3://%s/%s: %w", s.bucket, s.key, err)
	}
	if doc.Name.FirstName == "" && doc.Name.LastName == "" {
		return domain.PassengerInfo{}, fmt.Errorf("profile s3://%s/%s has no passenger name", s.bucket, s.key)
	}

	s.cached = domain.PassengerInfo{
		FirstName: doc.Name.FirstName,
		LastName:  doc.Name.LastName,
		Email:     doc.Contact.Email,
		Phone:     doc.Contact.Phone,
	}
	s.fetchedAt = now
	s.hasValue = true
	return s.cached, nil
}

// Ensure implementations satisfy PassengerInfoSupplier at compile time.
var (
	_ domain.PassengerInfoSupplier = (*StaticSupplier)(nil)
	_ domain.PassengerInfoSupplier = (*S3Supplier)(nil)
)
