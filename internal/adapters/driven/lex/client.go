package lex

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lexmodels "github.com/aws/aws-sdk-go-v2/service/lexmodelbuildingservice"

	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/ports/driven"
)

// DefaultRegion is used when neither flags nor config name a region.
const DefaultRegion = "us-east-1"

// Ensure Client implements the interface.
var _ driven.BotModelService = (*Client)(nil)

// API is the subset of the Lex model building client used by lexport.
// *lexmodelbuildingservice.Client satisfies it.
type API interface {
	GetBot(ctx context.Context, params *lexmodels.GetBotInput, optFns ...func(*lexmodels.Options)) (*lexmodels.GetBotOutput, error)
	GetIntent(ctx context.Context, params *lexmodels.GetIntentInput, optFns ...func(*lexmodels.Options)) (*lexmodels.GetIntentOutput, error)
	GetSlotType(ctx context.Context, params *lexmodels.GetSlotTypeInput, optFns ...func(*lexmodels.Options)) (*lexmodels.GetSlotTypeOutput, error)
}

// Options configures a Client.
type Options struct {
	// Region is the AWS region. Empty means DefaultRegion.
	Region string

	// Profile selects a named profile from the shared AWS config files.
	Profile string

	// RequestsPerSecond throttles outgoing calls. Zero disables throttling.
	RequestsPerSecond float64
}

// Client reads bot definitions from the Lex model building service.
// It is safe for concurrent use.
type Client struct {
	api         API
	rateLimiter *RateLimiter
}

// NewClient loads AWS configuration (environment, shared config files,
// instance roles) and creates a client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	region := opts.Region
	if region == "" {
		region = DefaultRegion
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewClientWithAPI(lexmodels.NewFromConfig(cfg), opts.RequestsPerSecond), nil
}

// NewClientWithAPI creates a client around an existing API implementation.
func NewClientWithAPI(api API, requestsPerSecond float64) *Client {
	return &Client{
		api:         api,
		rateLimiter: NewRateLimiter(requestsPerSecond),
	}
}

// GetBot fetches a bot by version number or alias.
func (c *Client) GetBot(ctx context.Context, name, versionOrAlias string) (*domain.Bot, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	out, err := c.api.GetBot(ctx, &lexmodels.GetBotInput{
		Name:           aws.String(name),
		VersionOrAlias: aws.String(versionOrAlias),
	})
	if err != nil {
		return nil, wrapError(err, "GetBot")
	}
	if out == nil {
		return nil, fmt.Errorf("GetBot %s: %w", name, domain.ErrNotFound)
	}

	return botFromOutput(out), nil
}

// GetIntent fetches one version of an intent.
func (c *Client) GetIntent(ctx context.Context, name, version string) (*domain.Intent, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	out, err := c.api.GetIntent(ctx, &lexmodels.GetIntentInput{
		Name:    aws.String(name),
		Version: aws.String(version),
	})
	if err != nil {
		return nil, wrapError(err, "GetIntent")
	}
	if out == nil {
		return nil, fmt.Errorf("GetIntent %s: %w", name, domain.ErrNotFound)
	}

	return intentFromOutput(out), nil
}

// GetSlotType fetches one version of a slot type.
func (c *Client) GetSlotType(ctx context.Context, name, version string) (*domain.SlotType, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	out, err := c.api.GetSlotType(ctx, &lexmodels.GetSlotTypeInput{
		Name:    aws.String(name),
		Version: aws.String(version),
	})
	if err != nil {
		return nil, wrapError(err, "GetSlotType")
	}
	if out == nil {
		return nil, fmt.Errorf("GetSlotType %s: %w", name, domain.ErrNotFound)
	}

	return slotTypeFromOutput(out), nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// isContextError reports whether err came from ctx cancellation.
func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
