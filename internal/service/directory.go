package service

import (
	"crypto/tls"
	"time"

	"crm-portal-backend/internal/config"
	apperrors "crm-portal-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryUser represents a subset of directory attributes returned when
// searching for lead owners
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
	Mobile      string `json:"mobile"`
	GivenName   string `json:"givenName"`
	SN          string `json:"sn"`
}

// DirectoryService provides corporate directory lookups over LDAP
type DirectoryService struct {
	cfg *config.Config
}

// Ensure DirectoryService implements DirectoryServiceInterface
var _ DirectoryServiceInterface = (*DirectoryService)(nil)

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// SearchUsers searches directory users by common name (cn prefix match)
func (s *DirectoryService) SearchUsers(query string) ([]DirectoryUser, error) {
	if s.cfg.LDAPHost == "" {
		return nil, apperrors.ErrLDAPNotConfigured
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(cn=" + ldap.EscapeFilter(query) + "*)"
	attrs := []string{"displayName", "mail", "mobile", "givenName", "sn"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			Mail:        e.GetAttributeValue("mail"),
			Mobile:      e.GetAttributeValue("mobile"),
			GivenName:   e.GetAttributeValue("givenName"),
			SN:          e.GetAttributeValue("sn"),
		})
	}

	return out, nil
}
