package config

import "testing"

func TestDetectImportAlias(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contents string
		want     string
	}{
		{
			"conventional at-alias",
			"tsconfig.json",
			`{"compilerOptions":{"baseUrl":".","paths":{"@/*":["./src/*"]}}}`,
			"@",
		},
		{
			"tilde alias",
			"tsconfig.json",
			`{"compilerOptions":{"paths":{"~/*":["./app/*"]}}}`,
			"~",
		},
		{
			"jsconfig fallback",
			"jsconfig.json",
			`{"compilerOptions":{"paths":{"@/*":["src/*"]}}}`,
			"@",
		},
		{
			"alias to project root",
			"tsconfig.json",
			`{"compilerOptions":{"paths":{"@/*":["./*"]}}}`,
			"@",
		},
		{
			"no paths configured",
			"tsconfig.json",
			`{"compilerOptions":{"strict":true}}`,
			"",
		},
		{
			"alias to unrelated directory",
			"tsconfig.json",
			`{"compilerOptions":{"paths":{"@assets/*":["./public/assets/*"]}}}`,
			"",
		},
		{
			"jsonc comments and trailing commas",
			"tsconfig.json",
			`{
				// path aliases
				"compilerOptions": {
					/* keep in sync with vite.config.ts */
					"paths": {
						"@/*": ["./src/*"],
					},
				},
			}`,
			"@",
		},
		{
			"malformed file",
			"tsconfig.json",
			`{"compilerOptions":`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.contents)
			if got := DetectImportAlias(dir); got != tt.want {
				t.Errorf("DetectImportAlias() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectImportAliasNoConfig(t *testing.T) {
	if got := DetectImportAlias(t.TempDir()); got != "" {
		t.Errorf("DetectImportAlias() = %q, want empty string", got)
	}
}

func TestDetectImportAliasPrefersTsconfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tsconfig.json", `{"compilerOptions":{"paths":{"~/*":["./src/*"]}}}`)
	writeFile(t, dir, "jsconfig.json", `{"compilerOptions":{"paths":{"@/*":["./src/*"]}}}`)

	if got := DetectImportAlias(dir); got != "~" {
		t.Errorf("DetectImportAlias() = %q, want %q (tsconfig should win)", got, "~")
	}
}
