package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/corpus"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	resetFlags()
	t.Cleanup(func() {
		resetFlags()
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags 命令对象是全局的，每次执行前恢复默认值
func resetFlags() {
	configFile, logLevel = "", ""
	calcEngine = shanten.NameDecompFixed
	genSeed, genCases, genOut = 0, 0, ""
	verifyEngines, verifyKinds, verifyLimit = nil, nil, 10
	benchEngines, benchKinds, benchWorkers = nil, nil, 0
}

// writeCorpusConfig 生成 n 手语料并写出指向它的配置文件
func writeCorpusConfig(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	_, err := execute(t, "gen", "--cases", strconv.Itoa(n), "--seed", "7", "--out", dir)
	require.NoError(t, err)

	conf := filepath.Join(dir, "application.yml")
	body := fmt.Sprintf("bench:\n  corpusDir: %s\n  expectedLines: %d\n  workers: 2\n", dir, n)
	require.NoError(t, os.WriteFile(conf, []byte(body), 0o644))
	return conf
}

func TestCalc(t *testing.T) {
	out, err := execute(t, "calc", "123m456p789s1122z", "123m456p789s11222z")
	require.NoError(t, err)
	assert.Equal(t, "123m456p789s1122z\tdecomp-fixed\t0\n123m456p789s11222z\tdecomp-fixed\t-1\n", out)
}

func TestCalcAllEngines(t *testing.T) {
	out, err := execute(t, "calc", "--engine", "all", "1111z")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, out, "1111z\tdecomp-fixed\t1\n")
	assert.Contains(t, out, "1111z\tmeld-search\t1\n")
}

func TestCalcErrors(t *testing.T) {
	_, err := execute(t, "calc", "--engine", "nope", "1m")
	assert.ErrorIs(t, err, shanten.ErrUnknownEngine)

	calcEngine = shanten.NameDecompFixed
	_, err = execute(t, "calc", "123m456p789s11223344z")
	assert.ErrorIs(t, err, tile.ErrTooManyTiles)
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "gen", "--cases", "8", "--seed", "3", "--out", dir)
	require.NoError(t, err)

	for _, k := range corpus.Kinds {
		path := filepath.Join(dir, "hands_"+string(k)+"_8.txt")
		assert.Contains(t, out, path)
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}

func TestGenThenVerify(t *testing.T) {
	conf := writeCorpusConfig(t, 8)

	out, err := execute(t, "verify", "--configFile", conf, "--engines", "decomp-fixed,meld-search")
	require.NoError(t, err)
	for _, k := range corpus.Kinds {
		assert.Contains(t, out, string(k)+": 8 hands, 0 disagreements\n")
	}
}

func TestVerifyDisagreement(t *testing.T) {
	conf := writeCorpusConfig(t, 8)

	// zero 恒为 0，十三幺语料上的一般型向听不可能全是 0
	out, err := execute(t, "verify", "--configFile", conf, "--engines", "decomp,zero", "--kinds", "thirteen_orphans")
	assert.ErrorIs(t, err, errDisagreement)
	assert.Contains(t, out, "thirteen_orphans: 8 hands")
	assert.NotContains(t, out, "thirteen_orphans: 8 hands, 0 disagreements")
	assert.NotContains(t, out, "normal:")
}

func TestVerifyErrors(t *testing.T) {
	conf := writeCorpusConfig(t, 8)

	_, err := execute(t, "verify", "--configFile", conf, "--kinds", "seven_pairs")
	assert.ErrorIs(t, err, corpus.ErrUnknownKind)

	_, err = execute(t, "verify", "--configFile", conf, "--engines", "nope")
	assert.ErrorIs(t, err, shanten.ErrUnknownEngine)

	// 默认配置指向不存在的 resources/hands_normal_10000.txt
	_, err = execute(t, "verify", "--engines", "zero", "--kinds", "normal")
	assert.Error(t, err)
}

func TestGenThenBench(t *testing.T) {
	conf := writeCorpusConfig(t, 8)

	out, err := execute(t, "bench", "--configFile", conf,
		"--engines", "zero,decomp-fixed", "--kinds", "normal,full_flush", "--workers", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "workers=3")
	assert.Contains(t, out, "hands/s")
	lines := strings.Split(out, "\n")
	rows := 0
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if fields[0] == shanten.NameZero || fields[0] == shanten.NameDecompFixed {
			assert.Contains(t, []string{"normal", "full_flush"}, fields[1])
			assert.Equal(t, "8", fields[2])
			rows++
		}
	}
	assert.Equal(t, 4, rows)
}
