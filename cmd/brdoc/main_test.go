package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Language:    "pt-BR",
		Kind:        KindAuto,
		Concurrency: 4,
		LogLevel:    "error",
		LogFormat:   "text",
	}
}

func runCLI(t *testing.T, cfg Config, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), cfg, args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      func(*Config)
		args     []string
		stdin    string
		wantCode int
		wantOut  string
	}{
		{
			name:     "valid arguments",
			args:     []string{"529.982.247-25", " 11222333000181 "},
			wantCode: exitOK,
			wantOut:  "529.982.247-25\tvalid\n11222333000181\tvalid\n",
		},
		{
			name:     "invalid argument",
			args:     []string{"52998224725", "111.111.111-11"},
			wantCode: exitInvalid,
			wantOut:  "52998224725\tvalid\n111.111.111-11\tO '111.111.111-11' é um CPF inválido\n",
		},
		{
			name:     "undetectable value",
			args:     []string{"abc"},
			wantCode: exitInvalid,
			wantOut:  "abc\tO 'abc' é um CPF/CNPJ inválido\n",
		},
		{
			name:     "fixed kind",
			cfg:      func(c *Config) { c.Kind = "CPF" },
			args:     []string{"11222333000181"},
			wantCode: exitInvalid,
			wantOut:  "11222333000181\tO '11222333000181' é um CPF inválido\n",
		},
		{
			name:     "language flag",
			args:     []string{"-lang", "en", "51.673.426/0001-48"},
			wantCode: exitInvalid,
			wantOut:  "51.673.426/0001-48\t'51.673.426/0001-48' is not a valid CNPJ\n",
		},
		{
			name:     "language from config",
			cfg:      func(c *Config) { c.Language = "es-AR" },
			args:     []string{"1"},
			wantCode: exitInvalid,
			wantOut:  "1\t'1' no es un CPF/CNPJ válido\n",
		},
		{
			name:     "kind flag overrides config",
			cfg:      func(c *Config) { c.Kind = "cpf" },
			args:     []string{"-kind", "cnpj", "51673426000147"},
			wantCode: exitOK,
			wantOut:  "51673426000147\tvalid\n",
		},
		{
			name:     "stdin skips blank lines",
			stdin:    "529.982.247-25\n\n  \n51.673.426/0001-47\r\n",
			wantCode: exitOK,
			wantOut:  "529.982.247-25\tvalid\n51.673.426/0001-47\tvalid\n",
		},
		{
			name:     "empty input",
			wantCode: exitOK,
			wantOut:  "",
		},
		{
			name:     "unknown kind",
			cfg:      func(c *Config) { c.Kind = "rg" },
			args:     []string{"529.982.247-25"},
			wantCode: exitUsage,
		},
		{
			name:     "unknown flag",
			args:     []string{"-nope"},
			wantCode: exitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}
			code, out, _ := runCLI(t, cfg, tt.stdin, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}

func TestRun_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Concurrency = 3
	values := []string{
		"529.982.247-25",
		"52998224726",
		"11.222.333/0001-81",
		"12312312387",
		"00000000000",
		"51673426000147",
		"51673426000148",
	}

	code, out, _ := runCLI(t, cfg, strings.Join(values, "\n"))
	assert.Equal(t, exitInvalid, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(values))
	for i, line := range lines {
		value, status, ok := strings.Cut(line, "\t")
		require.True(t, ok, line)
		assert.Equal(t, values[i], value)
		switch i {
		case 0, 2, 3, 5:
			assert.Equal(t, "valid", status)
		default:
			assert.NotEqual(t, "valid", status)
		}
	}
}

func TestRun_Logging(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	code, _, logs := runCLI(t, cfg, "", "52998224726")
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, logs, `"msg":"validation started"`)
	assert.Contains(t, logs, `"msg":"document rejected"`)
	assert.Contains(t, logs, `"msg":"validation finished"`)
	assert.Contains(t, logs, `"correlation_id":`)
	assert.Contains(t, logs, `"invalid":1`)
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, testConfig(), []string{"529.982.247-25"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout.String())
}

func TestConfig(t *testing.T) {
	t.Parallel()

	spec, err := Config{Kind: ""}.spec()
	require.NoError(t, err)
	assert.Nil(t, spec)

	spec, err = Config{Kind: " cnpj "}.spec()
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, "CNPJ", spec.Name())

	_, err = Config{Kind: "nis"}.spec()
	assert.Error(t, err)

	assert.Equal(t, 1, Config{Concurrency: 0}.concurrency())
	assert.Equal(t, 5, Config{Concurrency: 5}.concurrency())
}
