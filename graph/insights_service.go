package graph

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/graphkit/facebook-sdk-go/internal/httpx"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
	"github.com/shopspring/decimal"
)

// InsightValue is a single metric observation. Values are kept exact.
type InsightValue struct {
	Value   decimal.Decimal `json:"value"`
	EndTime string          `json:"end_time"`
}

// Insight is one metric series for an app.
type Insight struct {
	Name   string         `json:"name"`
	Period string         `json:"period"`
	Values []InsightValue `json:"values"`
}

// InsightPeriod is an aggregation window for insight metrics.
type InsightPeriod string

const (
	PeriodDay      InsightPeriod = "day"
	PeriodWeek     InsightPeriod = "week"
	PeriodMonth    InsightPeriod = "month"
	PeriodLifetime InsightPeriod = "lifetime"
)

func (p InsightPeriod) isValid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodLifetime:
		return true
	}
	return false
}

// AppInsightsService reads app metrics. Insights are administrative data, so
// an AppAccessToken is required.
type AppInsightsService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	appID    string
	metric   string
	period   *InsightPeriod
	since    *Date
	until    *Date
	token    AppAccessToken
	tokenSet bool
}

// NewAppInsightsService creates a new AppInsightsService.
func NewAppInsightsService() *AppInsightsService {
	return &AppInsightsService{
		client:     httpx.NewDefaultHTTPClient(),
		reqBuilder: newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *AppInsightsService) WithClient(client transport.HTTPClient) *AppInsightsService {
	s.client = client
	return s
}

// AppID sets the application id the metrics belong to.
func (s *AppInsightsService) AppID(id string) *AppInsightsService {
	s.appID = id
	return s
}

// Metric sets the metric name, e.g. "application_installs".
func (s *AppInsightsService) Metric(metric string) *AppInsightsService {
	s.metric = metric
	return s
}

// Period sets the aggregation window.
func (s *AppInsightsService) Period(p InsightPeriod) *AppInsightsService {
	s.period = &p
	return s
}

// Since restricts the series to observations on or after d.
func (s *AppInsightsService) Since(d Date) *AppInsightsService {
	s.since = &d
	return s
}

// Until restricts the series to observations before d.
func (s *AppInsightsService) Until(d Date) *AppInsightsService {
	s.until = &d
	return s
}

// AppToken sets the administrative token.
func (s *AppInsightsService) AppToken(token AppAccessToken) *AppInsightsService {
	s.token = token
	s.tokenSet = true
	return s
}

// Validate validates the service parameters.
func (s *AppInsightsService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("AppInsightsService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *AppInsightsService) Do(ctx context.Context) (*Pager[Insight], error) {
	var args []Argument
	if s.period != nil {
		args = append(args, Arg("period", Text(*s.period)))
	}
	if s.since != nil {
		args = append(args, Arg("since", *s.since))
	}
	if s.until != nil {
		args = append(args, Arg("until", *s.until))
	}
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.appID + "/insights/" + s.metric).
		WithToken(s.token).
		WithArgs(args).
		Build()

	op := "AppInsightsService.Do"
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	if err := checkResponseError(resp); err != nil {
		return nil, wrapResponseError(op, err)
	}

	return decodeResponse[Pager[Insight]](resp.Body, op)
}

func (s *AppInsightsService) validate() error {
	var errs []string
	if s.appID == "" {
		errs = append(errs, "app id is required")
	}
	if s.metric == "" {
		errs = append(errs, "metric is required")
	}
	if s.period != nil && !s.period.isValid() {
		errs = append(errs, "period is invalid")
	}
	if !s.tokenSet || s.token.Data == "" {
		errs = append(errs, "app access token is required")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
