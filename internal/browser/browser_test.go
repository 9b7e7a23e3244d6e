package browser

import "testing"

// TestValidateURL はURL検証をテストする
func TestValidateURL(t *testing.T) {
	testCases := []struct {
		name      string
		url       string
		expectErr bool
	}{
		{
			name:      "ループバックのhttp URL",
			url:       "http://127.0.0.1:8765",
			expectErr: false,
		},
		{
			name:      "https URL",
			url:       "https://example.com/",
			expectErr: false,
		},
		{
			name:      "スキームなし",
			url:       "127.0.0.1:8765",
			expectErr: true,
		},
		{
			name:      "ファイルスキーム",
			url:       "file:///etc/passwd",
			expectErr: true,
		},
		{
			name:      "ホストなし",
			url:       "http://",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateURL(tc.url)
			if tc.expectErr && err == nil {
				t.Error("エラーが期待されましたが発生しませんでした")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("予期しないエラーが発生しました: %v", err)
			}
		})
	}
}
