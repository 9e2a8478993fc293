package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"study-planner/internal/errors"
)

// actionSuffix maps collections to the verb suffix the remote web app
// expects: GET ?action=get<Suffix> and POST ?action=save<Suffix>.
var actionSuffix = map[Collection]string{
	CollectionSyllabus:  "Syllabus",
	CollectionTests:     "Tests",
	CollectionClasses:   "Classes",
	CollectionDay:       "TodayTodos",
	CollectionLogs:      "Logs",
	CollectionSummaries: "WeeklySummaries",
}

// remoteEnvelope is the wire envelope the web app wraps every response in.
// Data is null for a collection that has never been written.
type remoteEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// RemoteStore implements Store against the hosted web-app endpoint. Writes
// send the serialized collection as a plain-text body to avoid preflight
// handling on the hosted side.
type RemoteStore struct {
	baseURL string
	http    *http.Client
}

// NewRemote creates a store client for the given web-app URL.
func NewRemote(baseURL string, timeout time.Duration) *RemoteStore {
	return &RemoteStore{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// Get retrieves a collection's payload
func (r *RemoteStore) Get(ctx context.Context, collection Collection) ([]byte, error) {
	action := "get" + actionSuffix[collection]
	url := fmt.Sprintf("%s?action=%s", r.baseURL, action)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewRemoteError(action, err)
	}

	env, err := r.do(req, action)
	if err != nil {
		return nil, err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, errors.NewNotFoundError("collection", string(collection))
	}
	return env.Data, nil
}

// Set writes a collection's payload wholesale
func (r *RemoteStore) Set(ctx context.Context, collection Collection, payload []byte) error {
	action := "save" + actionSuffix[collection]
	url := fmt.Sprintf("%s?action=%s", r.baseURL, action)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.NewRemoteError(action, err)
	}
	req.Header.Set("Content-Type", "text/plain")

	_, err = r.do(req, action)
	return err
}

// do executes a request and decodes the remote envelope.
func (r *RemoteStore) do(req *http.Request, action string) (*remoteEnvelope, error) {
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, errors.NewRemoteError(action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewRemoteError(action, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewRemoteError(action, err)
	}

	var env remoteEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.NewRemoteError(action, fmt.Errorf("decoding response: %w", err))
	}
	if !env.Success {
		return nil, errors.NewRemoteError(action, fmt.Errorf("remote error: %s", env.Error))
	}
	return &env, nil
}

// Close implements Store. The HTTP client holds no resources worth closing.
func (r *RemoteStore) Close() error {
	return nil
}
