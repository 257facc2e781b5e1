package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	// 1. A visitor submits an inquiry without authenticating
	var created map[string]interface{}
	resp := doJSON(t, app, "POST", "/inquiries", "", map[string]string{
		"name":    "Jordan Riley",
		"email":   "jordan@example.com",
		"message": "How do I update my voter registration?",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, created["id"])
	assert.Equal(t, "jordan@example.com", created["email"])
	assert.Equal(t, false, created["replied"])

	inquiryID := created["id"].(string)

	// 2. An admin sees it in the list
	_, adminToken := createAdminAndToken(t, app.DB)

	var listed []map[string]interface{}
	resp = doJSON(t, app, "GET", "/api/inquiries", adminToken, nil, &listed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, listed, 1)
	assert.Equal(t, inquiryID, listed[0]["id"])
	assert.Equal(t, "Jordan Riley", listed[0]["name"])

	// 3. And can fetch it by ID
	var fetched map[string]interface{}
	resp = doJSON(t, app, "GET", "/api/inquiries/"+inquiryID, adminToken, nil, &fetched)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "How do I update my voter registration?", fetched["message"])

	// 4. Deleting removes it for good
	resp = doJSON(t, app, "DELETE", "/api/inquiries/"+inquiryID, adminToken, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/inquiries/"+inquiryID, adminToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitInquiryValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	cases := []struct {
		name    string
		payload map[string]string
	}{
		{"missing name", map[string]string{"email": "a@example.com", "message": "hi"}},
		{"bad email", map[string]string{"name": "A", "email": "not-an-email", "message": "hi"}},
		{"empty message", map[string]string{"name": "A", "email": "a@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, "POST", "/inquiries", "", tc.payload, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	var count int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM inquiries").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestInquiryAdminEndpointsRequireAdmin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	_, voterToken := createUserAndToken(t, app.DB)

	resp := doJSON(t, app, "GET", "/api/inquiries", voterToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
