package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func serveRequest(t *testing.T, method, uri string, body []byte) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		req.SetBody(body)
	}

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)

	New(nil).route(&ctx)
	return &ctx
}

func TestHealthEndpoint(t *testing.T) {
	ctx := serveRequest(t, fasthttp.MethodGet, "http://test/healthz", nil)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))
}

func TestCalculateEndpoint(t *testing.T) {
	payload := []byte(`{
		"currentAge": 35,
		"retirementAge": 65,
		"currentMonthlySalary": 20000,
		"pensionContributionRate": 12.5,
		"targetReplacementRate": 70,
		"currentSavings": 300000
	}`)
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/calculate", payload)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp struct {
		Metadata CalculationMetadata `json:"metadata"`
		Result   struct {
			TotalSavings float64 `json:"totalSavings"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))

	assert.Equal(t, OutcomeSuccess, resp.Metadata.CalculationOutcome)
	assert.NotEmpty(t, resp.Metadata.CalculationID)
	assert.NotEmpty(t, resp.Metadata.CalculationStartedAt)
	assert.True(t, resp.Result.TotalSavings > 300000)
}

func TestOptimizeEndpoint(t *testing.T) {
	payload := []byte(`{
		"currentAge": 40,
		"retirementAge": 65,
		"currentSavings": 400000,
		"stockPercentage": 80,
		"riskTolerance": "aggressive"
	}`)
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/optimize", payload)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp struct {
		Metadata CalculationMetadata `json:"metadata"`
		Result   struct {
			OptimalAllocation map[string]map[string]float64 `json:"optimalAllocation"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))

	assert.Equal(t, OutcomeSuccess, resp.Metadata.CalculationOutcome)
	assert.NotEmpty(t, resp.Result.OptimalAllocation)
}

func TestCalculateRejectsMalformedBody(t *testing.T) {
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/calculate", []byte(`{"currentAge": `))

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, fasthttp.StatusBadRequest, resp.Status)
	assert.Equal(t, OutcomeFailure, resp.Outcome)
}

func TestCalculateRejectsInvalidAges(t *testing.T) {
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/calculate",
		[]byte(`{"currentAge": 60, "retirementAge": 50}`))

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestCalculateRequiresPost(t *testing.T) {
	ctx := serveRequest(t, fasthttp.MethodGet, "http://test/api/v1/calculate", nil)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestUnknownRoute(t *testing.T) {
	ctx := serveRequest(t, fasthttp.MethodGet, "http://test/api/v1/nope", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
