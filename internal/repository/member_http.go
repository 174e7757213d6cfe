package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"members-admin-service/internal/domain"

	"github.com/goccy/go-json"
)

// HTTPMemberSource загружает участников одним GET-запросом к фиксированному адресу.
type HTTPMemberSource struct {
	client *http.Client
	url    string
}

// NewHTTPMemberSource создает источник участников поверх HTTP.
// Если client == nil, используется http.DefaultClient.
func NewHTTPMemberSource(client *http.Client, url string) domain.MemberSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPMemberSource{
		client: client,
		url:    url,
	}
}

// FetchMembers выполняет GET и декодирует JSON-массив {id, name, email, role}.
func (s *HTTPMemberSource) FetchMembers(ctx context.Context) ([]*domain.Member, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build members request: %w: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("members endpoint returned %d: %w", resp.StatusCode, domain.ErrFetchFailed)
	}

	var members []*domain.Member
	if err := json.NewDecoder(resp.Body).Decode(&members); err != nil {
		return nil, fmt.Errorf("failed to decode members: %w: %v", domain.ErrFetchFailed, err)
	}

	return members, nil
}
