package api

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/go-narvi-client/narvi/sign"
)

func testClient(t *testing.T, handler http.Handler) (Client, *rsa.PrivateKey, *httptest.Server) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cli := New(Config{
		APIKeyID: "key-1",
		BaseURL:  srv.URL,
		BaasURL:  srv.URL + "/baas-host",
		Signer:   sign.New(key),
	})
	return cli, key, srv
}

func TestClient_Dispatch_HeadersAndSignature(t *testing.T) {

	var gotPath, gotKeyID, gotRequestID, gotSignature, gotBody string
	cli, key, srv := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKeyID = r.Header.Get("API-KEY-ID")
		gotRequestID = r.Header.Get("API-REQUEST-ID")
		gotSignature = r.Header.Get("API-REQUEST-SIGNATURE")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pid":"tr_1"}`))
	}))

	payload := map[string]any{"currency": "EUR", "amount": 1234}
	res, err := cli.Post(context.Background(), "/transactions/create", payload)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	assert.Equal(t, "/transactions/create", gotPath)
	assert.Equal(t, "key-1", gotKeyID)
	assert.NotEmpty(t, gotRequestID)
	assert.JSONEq(t, `{"currency":"EUR","amount":1234}`, gotBody)

	// The server side can reproduce the signature from the headers alone.
	canonical, err := sign.CanonicalJSON(payload)
	require.NoError(t, err)
	descriptor := srv.URL + "/transactions/create" + "POST" + gotRequestID + canonical
	digest := sha256.Sum256([]byte(descriptor))
	outer := sha256.Sum256(digest[:])

	sig, err := base64.StdEncoding.DecodeString(gotSignature)
	require.NoError(t, err)
	assert.NoError(t, rsa.VerifyPKCS1v15(&key.PublicKey, crypto.SHA256, outer[:], sig))
}

func TestClient_Dispatch_FreshRequestIDPerCall(t *testing.T) {

	var ids []string
	cli, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("API-REQUEST-ID"))
		_, _ = w.Write([]byte(`{}`))
	}))

	ctx := context.Background()
	_, err := cli.Get(ctx, "/account/list", nil)
	require.NoError(t, err)
	_, err = cli.Get(ctx, "/account/list", nil)
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1], "request id must be freshly generated per dispatch")
}

func TestClient_Dispatch_BaasHostSelection(t *testing.T) {

	var gotPath string
	cli, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := cli.Post(context.Background(), "/baas/v1.0/entity/private/create", map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "/baas-host/baas/v1.0/entity/private/create", gotPath)

	_, err = cli.Get(context.Background(), "/account/list", nil)
	require.NoError(t, err)
	assert.Equal(t, "/account/list", gotPath)
}

func TestClient_Dispatch_QueryParams(t *testing.T) {

	var gotQuery string
	cli, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := cli.Get(context.Background(), "/transactions/list", map[string]any{"page_size": 25})
	require.NoError(t, err)
	assert.Equal(t, "page_size=25", gotQuery)
}

func TestClient_Dispatch_RemoteErrorNormalized(t *testing.T) {

	cli, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"country is required"}`))
	}))

	res, err := cli.Post(context.Background(), "/transactions/create", map[string]any{})
	require.NoError(t, err, "remote errors must come back as values")
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, res.Error, "country is required")

	reqErr := res.Err()
	require.Error(t, reqErr)
	var re *RequestError
	require.ErrorAs(t, reqErr, &re)
	assert.Equal(t, http.StatusUnprocessableEntity, re.StatusCode)
	assert.Equal(t, "country is required", re.ErrorDetails["detail"])
}

func TestClient_Dispatch_TransportErrorNormalized(t *testing.T) {

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	cli := New(Config{
		APIKeyID: "key-1",
		BaseURL:  "http://127.0.0.1:1", // nothing listens here
		BaasURL:  "http://127.0.0.1:1",
		Signer:   sign.New(key),
	})

	res, err := cli.Get(context.Background(), "/account/list", nil)
	require.NoError(t, err, "transport errors must come back as values")
	assert.False(t, res.Success)
	assert.Zero(t, res.StatusCode)
	assert.NotEmpty(t, res.Error)
}

func TestClient_Dispatch_SigningFailureIsFatal(t *testing.T) {

	cli := New(Config{
		APIKeyID: "key-1",
		BaseURL:  "http://example.invalid",
		BaasURL:  "http://example.invalid",
		Signer:   sign.New(nil),
	})

	_, err := cli.Get(context.Background(), "/account/list", nil)
	assert.ErrorIs(t, err, sign.ErrNoPrivateKey)
}
