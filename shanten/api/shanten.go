package api

import (
	"github.com/Apricot-S/shanten-algorithm-collection/common/http"
	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
)

// Service 持有各引擎实例，实例可以带缓存
type Service struct {
	calcs         map[string]shanten.Calculator
	defaultEngine string
}

// NewService calcs 按名字索引，未指定引擎时用 defaultEngine
func NewService(calcs []shanten.Calculator, defaultEngine string) *Service {
	s := &Service{
		calcs:         make(map[string]shanten.Calculator, len(calcs)),
		defaultEngine: defaultEngine,
	}
	for _, c := range calcs {
		s.calcs[c.Name()] = c
	}
	return s
}

type engineInfo struct {
	Name      string `json:"name"`
	Summary   string `json:"summary"`
	Scale     string `json:"scale"`
	Exact     bool   `json:"exact"`
	Reference bool   `json:"reference"`
	// 带缓存的引擎才有
	CacheHits   *int64 `json:"cacheHits,omitempty"`
	CacheMisses *int64 `json:"cacheMisses,omitempty"`
}

// CacheStats 带缓存引擎的命中统计
type CacheStats interface {
	Stats() (hits, misses int64)
}

// EnginesHandler 列出已加载的引擎
func (s *Service) EnginesHandler(c *http.Context) error {
	var out []engineInfo
	for _, d := range shanten.Descriptors() {
		calc, ok := s.calcs[d.Name]
		if !ok {
			continue
		}
		info := engineInfo{
			Name:      d.Name,
			Summary:   d.Summary,
			Scale:     calc.Scale().String(),
			Exact:     d.Exact,
			Reference: d.Reference,
		}
		if cs, ok := calc.(CacheStats); ok {
			hits, misses := cs.Stats()
			info.CacheHits, info.CacheMisses = &hits, &misses
		}
		out = append(out, info)
	}
	c.Success(out)
	return nil
}

type shantenRequest struct {
	Hand   string `json:"hand" binding:"required"`
	Engine string `json:"engine"`
}

type shantenResponse struct {
	Hand    string `json:"hand"`
	Engine  string `json:"engine"`
	Shanten int8   `json:"shanten"`
}

// ShantenHandler 用一个引擎计算
func (s *Service) ShantenHandler(c *http.Context) error {
	var req shantenRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("请求参数错误")
		return nil
	}
	h, ok := parseHand(c, req.Hand)
	if !ok {
		return nil
	}
	name := req.Engine
	if name == "" {
		name = s.defaultEngine
	}
	calc, ok := s.calcs[name]
	if !ok {
		c.NotFound("未知引擎: " + name)
		return nil
	}

	c.Success(shantenResponse{
		Hand:    h.String(),
		Engine:  name,
		Shanten: calc.CalculateShanten(h),
	})
	return nil
}

type compareRequest struct {
	Hand string `json:"hand" binding:"required"`
}

type compareResponse struct {
	Hand    string          `json:"hand"`
	Results map[string]int8 `json:"results"`
	Agree   bool            `json:"agree"`
}

// CompareHandler 所有参与交叉校验的引擎各算一次
func (s *Service) CompareHandler(c *http.Context) error {
	var req compareRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("请求参数错误")
		return nil
	}
	h, ok := parseHand(c, req.Hand)
	if !ok {
		return nil
	}

	resp := compareResponse{Hand: h.String(), Results: map[string]int8{}, Agree: true}
	first := true
	var base int8
	for _, name := range shanten.CrossCheckNames() {
		calc, ok := s.calcs[name]
		if !ok {
			continue
		}
		v := calc.CalculateShanten(h)
		resp.Results[name] = v
		if first {
			base, first = v, false
		} else if v != base {
			resp.Agree = false
		}
	}
	if !resp.Agree {
		log.Debug("引擎结果不一致 %s: %v", resp.Hand, resp.Results)
	}
	c.Success(resp)
	return nil
}

func parseHand(c *http.Context, code string) (tile.Counts, bool) {
	h, err := tile.ParseCode(code)
	if err == nil {
		err = h.Validate()
	}
	if err != nil {
		c.BadRequest(err.Error())
		return tile.Counts{}, false
	}
	return h, true
}
