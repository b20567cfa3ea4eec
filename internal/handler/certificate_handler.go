package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

type certificateRequest struct {
	Title         string `json:"title" binding:"required"`
	Issuer        string `json:"issuer" binding:"required"`
	IssueDate     string `json:"issue_date" binding:"required"`
	ExpiryDate    string `json:"expiry_date"`
	CredentialURL string `json:"credential_url"`
	ImageURL      string `json:"image_url"`
	OrderIndex    *int   `json:"order_index"`
}

func certificateJSON(cert db.Certificate) gin.H {
	return gin.H{
		"id":             cert.ID,
		"title":          cert.Title,
		"issuer":         cert.Issuer,
		"issue_date":     cert.IssueDate,
		"expiry_date":    cert.ExpiryDate,
		"credential_url": cert.CredentialURL,
		"image_url":      cert.ImageURL,
		"order_index":    cert.OrderIndex,
	}
}

func certificateListJSON(certs []db.Certificate) []gin.H {
	response := make([]gin.H, 0, len(certs))
	for _, cert := range certs {
		response = append(response, certificateJSON(cert))
	}
	return response
}

// GetCertificates 获取证书列表（后台，不走缓存）
func (a *API) GetCertificates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"certificates": certificateListJSON(a.certificates.List())})
}

// CreateCertificate 创建新证书
func (a *API) CreateCertificate(c *gin.Context) {
	var req certificateRequest
	if !bindJSON(c, &req, "Title, issuer and issue date are required") {
		return
	}

	cert, err := a.certificates.Create(service.CertificateInput{
		Title:         req.Title,
		Issuer:        req.Issuer,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
		CredentialURL: req.CredentialURL,
		ImageURL:      req.ImageURL,
		OrderIndex:    req.OrderIndex,
	})
	if err != nil {
		if errors.Is(err, service.ErrCertificateInvalidInput) {
			respondError(c, http.StatusBadRequest, "Title, issuer and issue date are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create certificate")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Certificate created", "certificate": certificateJSON(*cert)})
}

// DeleteCertificate 删除证书
func (a *API) DeleteCertificate(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid certificate ID")
		return
	}

	if err := a.certificates.Delete(id); err != nil {
		if errors.Is(err, service.ErrCertificateNotFound) {
			respondError(c, http.StatusNotFound, "Certificate not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete certificate")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Certificate deleted"})
}
