package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMailerNotConfigured 表示未配置邮件服务所需的 API Key 或收件地址。
var ErrMailerNotConfigured = errors.New("mailer is not configured")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// EmailReceipt 是邮件服务返回的投递凭据。
type EmailReceipt struct {
	ID string `json:"id"`
}

// EmailRelay abstracts the outbound mail call so the contact pipeline can be
// tested without the real service.
type EmailRelay interface {
	Send(ctx context.Context, name, email, message string) (EmailReceipt, error)
}

// Mailer 通过 Resend HTTP 接口把联系表单内容转发给站点所有者。
type Mailer struct {
	http    httpDoer
	baseURL string
	apiKey  string
	from    string
	to      string
}

type sendEmailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type sendEmailResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewMailer 构造 Mailer，baseURL 为空时使用 Resend 官方地址。
func NewMailer(apiKey, from, to, baseURL string) *Mailer {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "https://api.resend.com"
	}
	return &Mailer{
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: base,
		apiKey:  strings.TrimSpace(apiKey),
		from:    strings.TrimSpace(from),
		to:      strings.TrimSpace(to),
	}
}

// SetHTTPClient 替换底层 HTTP 客户端，主要供测试使用。
func (m *Mailer) SetHTTPClient(client httpDoer) {
	if client == nil {
		m.http = &http.Client{Timeout: 15 * time.Second}
		return
	}
	m.http = client
}

// SetBaseURL 覆盖邮件服务地址，主要供测试使用。
func (m *Mailer) SetBaseURL(base string) {
	m.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// Send 转发一条联系消息。非 2xx 响应视为整体失败。
func (m *Mailer) Send(ctx context.Context, name, email, message string) (EmailReceipt, error) {
	if m.apiKey == "" || m.to == "" {
		return EmailReceipt{}, ErrMailerNotConfigured
	}

	payload := sendEmailRequest{
		From:    m.from,
		To:      m.to,
		Subject: fmt.Sprintf("New Contact Message from %s", name),
		HTML:    buildContactEmailBody(name, email, message),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return EmailReceipt{}, fmt.Errorf("encode email payload: %w", err)
	}

	endpoint := m.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return EmailReceipt{}, fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return EmailReceipt{}, fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return EmailReceipt{}, fmt.Errorf("read email response: %w", err)
	}

	var result sendEmailResponse
	if len(respBody) > 0 {
		// 解析失败不致命，错误信息退化为原始响应文本
		_ = json.Unmarshal(respBody, &result)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errMsg := strings.TrimSpace(result.Error.Message)
		if errMsg == "" {
			errMsg = strings.TrimSpace(result.Message)
		}
		if errMsg == "" {
			errMsg = strings.TrimSpace(string(respBody))
		}
		if errMsg == "" {
			errMsg = resp.Status
		}
		return EmailReceipt{}, fmt.Errorf("email service error: %s", errMsg)
	}

	return EmailReceipt{ID: result.ID}, nil
}

var contactBodyEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;", "\n", "<br/>")

func buildContactEmailBody(name, email, message string) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Message from Your Portfolio</h2>")
	b.WriteString("<p><strong>From:</strong> " + contactBodyEscaper.Replace(name) + "</p>")
	b.WriteString("<p><strong>Email:</strong> " + contactBodyEscaper.Replace(email) + "</p>")
	b.WriteString("<p><strong>Message:</strong></p>")
	b.WriteString(`<p style="white-space: pre-wrap; background-color: #f5f5f5; padding: 10px; border-radius: 5px;">`)
	b.WriteString(contactBodyEscaper.Replace(message))
	b.WriteString("</p>")
	b.WriteString(`<hr style="border: none; border-top: 1px solid #ccc; margin: 20px 0;" />`)
	b.WriteString(`<p style="color: #666; font-size: 12px;">This message was sent via your portfolio contact form.</p>`)
	return b.String()
}
