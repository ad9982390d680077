package main

import (
	"path/filepath"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/corpus"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
)

// selectKinds 空列表表示全部
func selectKinds(names []string) ([]corpus.Kind, error) {
	if len(names) == 0 {
		return corpus.Kinds, nil
	}
	kinds := make([]corpus.Kind, 0, len(names))
	for _, n := range names {
		k, err := corpus.ParseKind(n)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// selectEngines 空列表时用 fallback
func selectEngines(names, fallback []string) ([]shanten.Calculator, error) {
	if len(names) == 0 {
		names = fallback
	}
	calcs := make([]shanten.Calculator, 0, len(names))
	for _, n := range names {
		c, err := shanten.New(n)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, c)
	}
	return calcs, nil
}

// loadCorpus 按 expected 定位 gen 写出的文件，expected 为 0 时读默认的 10000 手语料且不校验行数
func loadCorpus(dir string, kind corpus.Kind, expected int) ([]tile.Counts, error) {
	return corpus.Load(filepath.Join(dir, corpus.FileNameN(kind, expected)), expected)
}
