package compute_quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LV-BookingService/internal/domain"
	computeQuote "github.com/m04kA/LV-BookingService/internal/usecase/compute_quote"
)

type fakeUseCase struct {
	gotReq *computeQuote.Request
	resp   *computeQuote.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *computeQuote.Request) (*computeQuote.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &computeQuote.Response{Total: 19000, Base: 16000, Surcharge: 3000}}
	h := NewHandler(uc, nopLogger{})

	body := bytes.NewBufferString(`{"serviceIds":[1,2],"type":"home_visit"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", body)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.TypeHomeVisit, uc.gotReq.Type)
	assert.Equal(t, []int64{1, 2}, uc.gotReq.ServiceIDs)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(19000), resp.Total)
	assert.Equal(t, int64(16000), resp.Base)
	assert.Equal(t, int64(3000), resp.Surcharge)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidInput(t *testing.T) {
	uc := &fakeUseCase{err: computeQuote.ErrInvalidInput}
	h := NewHandler(uc, nopLogger{})

	body := bytes.NewBufferString(`{"serviceIds":[1],"type":"drive_through"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", body)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}
	h := NewHandler(uc, nopLogger{})

	body := bytes.NewBufferString(`{"serviceIds":[1],"type":"workshop"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", body)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
