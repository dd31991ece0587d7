package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/threadline/internal/models"
)

func TestCreateContact_SavesMessage(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"name":    "A",
		"email":   "a@x.com",
		"message": "Where is my parcel?",
	}

	resp := env.request(http.MethodPost, "/contact", payload, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Contact saved successfully!", decodeBody(t, resp)["message"])

	var contact models.Contact
	require.NoError(t, env.db.Where("email = ?", "a@x.com").First(&contact).Error)
	assert.Equal(t, "Where is my parcel?", contact.Message)
}

func TestListCoupons_ReturnsBareArray(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.db.Create(&models.Coupon{Name: "WELCOME10", Discount: "10%"}).Error)
	require.NoError(t, env.db.Create(&models.Coupon{Name: "SUMMER25", Discount: "25%"}).Error)

	resp := env.request(http.MethodGet, "/coupon", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var coupons []models.Coupon
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&coupons))
	require.Len(t, coupons, 2)
	assert.Equal(t, "WELCOME10", coupons[0].Name)
}

func TestHealthRoute(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(http.MethodGet, "/api", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Server is working", decodeBody(t, resp)["message"])
}
