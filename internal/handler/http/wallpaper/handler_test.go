package wallpaper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsboard/internal/domain/entity"
	wallpaperUC "newsboard/internal/usecase/wallpaper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	gotN int
	err  error
}

func (s *stubFetcher) Wallpaper(_ context.Context, n int) (entity.WallpaperSet, error) {
	s.gotN = n
	if s.err != nil {
		return entity.WallpaperSet{}, s.err
	}
	images := make([]string, 0, n)
	for i := 0; i < n; i++ {
		images = append(images, fmt.Sprintf(`{"title":"img-%d","startdate":"20240115","hsh":"h%d"}`, i, i))
	}
	payload := `{"images":[` + strings.Join(images, ",") + `],"tooltips":{"loading":"正在加载..."}}`
	return entity.WallpaperSet{Count: n, Payload: json.RawMessage(payload)}, nil
}

func serve(f *stubFetcher, target string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	Register(mux, &wallpaperUC.Service{Fetcher: f})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Count(t *testing.T) {
	tests := []struct {
		target string
		wantN  int
	}{
		{target: "/bing", wantN: 1},
		{target: "/bing?n=3", wantN: 3},
		{target: "/api/bing?n=20", wantN: 8},
		{target: "/bing?n=0", wantN: 1},
		{target: "/bing?n=abc", wantN: 1},
		{target: "/bing?n=3abc", wantN: 3},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			f := &stubFetcher{}
			rec := serve(f, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantN, f.gotN)
		})
	}
}

func TestHandler_Body(t *testing.T) {
	rec := serve(&stubFetcher{}, "/bing?n=1")
	assert.JSONEq(t, `{"success":true,"data":{
		"images":[{"title":"img-0","startdate":"20240115","hsh":"h0"}],
		"tooltips":{"loading":"正在加载..."}}}`, rec.Body.String())
}

func TestHandler_Failures(t *testing.T) {
	rec := serve(&stubFetcher{err: &entity.UpstreamError{Provider: "wallpaper", Status: "0", Message: "参数错误"}}, "/bing")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"参数错误"}`, rec.Body.String())

	rec = serve(&stubFetcher{err: &entity.UpstreamError{Provider: "wallpaper", Status: "0"}}, "/bing")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"获取壁纸数据失败"}`, rec.Body.String())

	rec = serve(&stubFetcher{err: fmt.Errorf("wallpaper upstream: %w", entity.ErrUpstreamUnavailable)}, "/bing")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"获取壁纸数据失败，请稍后重试"}`, rec.Body.String())
}
