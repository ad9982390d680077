package metrics

import (
	"net/http"

	"github.com/arl/statsviz"
)

// NewHandler 挂载 statsviz 页面 /debug/statsviz/
func NewHandler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return nil, err
	}
	return mux, nil
}

// Serve 阻塞监听 addr，提供运行时指标页面
func Serve(addr string) error {
	h, err := NewHandler()
	if err != nil {
		return err
	}
	return http.ListenAndServe(addr, h)
}
