package service

import (
	"context"
	"fmt"
	"time"

	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"
)

// LinkedInService handles the LinkedIn OAuth flow and lead imports sourced
// from LinkedIn campaigns
type LinkedInService struct {
	oauth       *oauth2.Config
	leadService LeadServiceInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// Ensure LinkedInService implements LinkedInServiceInterface
var _ LinkedInServiceInterface = (*LinkedInService)(nil)

// LinkedInConfig holds the OAuth application credentials
type LinkedInConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// NewLinkedInService creates a new LinkedIn integration service. The OAuth
// client is left nil when credentials are not configured; operations then
// return a configuration error instead of failing mid-flow.
func NewLinkedInService(cfg LinkedInConfig, leadService LeadServiceInterface, validator *validator.Validate, log *logger.Logger) *LinkedInService {
	svc := &LinkedInService{
		leadService: leadService,
		validator:   validator,
		log:         log,
	}

	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		svc.oauth = &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"r_liteprofile", "r_emailaddress"},
			Endpoint:     linkedin.Endpoint,
		}
	}

	return svc
}

// LinkedInTokenResponse represents the outcome of an authorization code exchange
type LinkedInTokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// LinkedInImportRequest represents a batch of leads exported from a LinkedIn
// campaign
type LinkedInImportRequest struct {
	CampaignID string            `json:"campaignId,omitempty" validate:"omitempty,max=100"`
	Leads      []ImportLeadInput `json:"leads" validate:"required,min=1,max=500"`
}

// AuthURL builds the LinkedIn authorization URL for the given state
func (s *LinkedInService) AuthURL(state string) (string, error) {
	if s.oauth == nil {
		return "", apperrors.ErrLinkedInNotConfigured
	}
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// ExchangeCode exchanges an authorization code for an access token
func (s *LinkedInService) ExchangeCode(ctx context.Context, code string) (*LinkedInTokenResponse, error) {
	if s.oauth == nil {
		return nil, apperrors.ErrLinkedInNotConfigured
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return &LinkedInTokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.Expiry,
	}, nil
}

// ImportLeads ingests a batch of campaign leads, tagging them with the
// LinkedIn source. Already-known emails are skipped.
func (s *LinkedInService) ImportLeads(req *LinkedInImportRequest) (*LeadImportResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	result, err := s.leadService.Import(req.Leads, "LinkedIn")
	if err != nil {
		return nil, err
	}

	s.log.WithField("campaignId", req.CampaignID).
		WithField("imported", result.Imported).
		WithField("skipped", result.Skipped).
		Info("LinkedIn lead import completed")

	return result, nil
}
