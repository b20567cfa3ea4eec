package service

import (
	"errors"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCertificateNotFound     = errors.New("certificate not found")
	ErrCertificateInvalidInput = errors.New("invalid certificate input")
)

// CertificateService handles certificate CRUD.
type CertificateService struct {
	store contentStore[db.Certificate]
}

// CertificateInput represents fields accepted when creating a certificate.
type CertificateInput struct {
	Title         string
	Issuer        string
	IssueDate     string
	ExpiryDate    string
	CredentialURL string
	ImageURL      string
	OrderIndex    *int
}

// NewCertificateService creates a CertificateService instance.
func NewCertificateService(gdb *gorm.DB) *CertificateService {
	return &CertificateService{
		store: newContentStore[db.Certificate](gdb, "certificate", "order_index asc"),
	}
}

// List returns certificates ordered by order_index. Store failures degrade
// to an empty slice.
func (s *CertificateService) List() []db.Certificate {
	return s.store.list()
}

// Create inserts a new certificate.
func (s *CertificateService) Create(input CertificateInput) (*db.Certificate, error) {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Issuer) == "" ||
		strings.TrimSpace(input.IssueDate) == "" {
		return nil, ErrCertificateInvalidInput
	}

	orderIndex, err := resolveOrderIndex(&s.store, input.OrderIndex)
	if err != nil {
		return nil, err
	}

	cert := db.Certificate{
		Title:         strings.TrimSpace(input.Title),
		Issuer:        strings.TrimSpace(input.Issuer),
		IssueDate:     strings.TrimSpace(input.IssueDate),
		ExpiryDate:    strings.TrimSpace(input.ExpiryDate),
		CredentialURL: strings.TrimSpace(input.CredentialURL),
		ImageURL:      strings.TrimSpace(input.ImageURL),
		OrderIndex:    orderIndex,
	}

	if err := s.store.create(&cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

// Delete removes a certificate by id.
func (s *CertificateService) Delete(id uint) error {
	return s.store.remove(id, ErrCertificateNotFound)
}
