package server_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"camp-activity-system/cmd/server"
	"camp-activity-system/internal/global/middleware"
	"camp-activity-system/internal/global/response"
	"camp-activity-system/internal/model"
	"camp-activity-system/internal/module"
	"camp-activity-system/test"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *resty.Client {
	t.Helper()
	for _, m := range module.Modules {
		m.Init()
	}
	srv := httptest.NewServer(server.NewEngine())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL)
}

func TestCampLifecycle(t *testing.T) {
	db := test.SetupDB(t)
	client := startServer(t)

	archery := test.CreateActivity(t, db, "Archery", 2)
	swim := test.CreateActivity(t, db, "Swimming", 3)

	var created model.CamperView
	resp, err := client.R().
		SetBody(map[string]any{"name": "Caitlin", "age": 8}).
		SetResult(&created).
		Post("/campers")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	require.NotEmpty(t, resp.Header().Get(middleware.RequestIDHeader))
	require.Equal(t, "Caitlin", created.Name)

	camperPath := "/campers/" + strconv.Itoa(int(created.ID))

	for _, a := range []*model.Activity{archery, swim} {
		var signup model.SignupDetail
		resp, err = client.R().
			SetBody(map[string]any{"time": 10, "camper_id": created.ID, "activity_id": a.ID}).
			SetResult(&signup).
			Post("/signups")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode())
		require.Equal(t, a.Name, signup.Activity.Name)
		require.Equal(t, "Caitlin", signup.Camper.Name)
	}

	var rejected response.ResponseBody
	resp, err = client.R().
		SetBody(map[string]any{"age": 30}).
		SetError(&rejected).
		Patch(camperPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode())
	require.Equal(t, []string{"validation errors"}, rejected.Errors)

	resp, err = client.R().Delete("/activities/" + strconv.Itoa(int(archery.ID)))
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode())
	require.Empty(t, resp.Body())

	var detail model.CamperDetail
	resp, err = client.R().SetResult(&detail).Get(camperPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Equal(t, 8, detail.Age)
	require.Len(t, detail.Signups, 1)
	require.Equal(t, swim.ID, detail.Signups[0].Activity.ID)

	var missing response.ResponseBody
	resp, err = client.R().SetError(&missing).Get("/campers/999")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode())
	require.Equal(t, "Camper not found", missing.Error)
}

func TestRootAndMetrics(t *testing.T) {
	test.SetupDB(t)
	client := startServer(t)

	resp, err := client.R().Get("/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Empty(t, resp.Body())

	_, err = client.R().Get("/activities")
	require.NoError(t, err)

	resp, err = client.R().Get("/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Contains(t, resp.String(), `camp_http_requests_total{method="GET",route="/activities",status="200"}`)
}
