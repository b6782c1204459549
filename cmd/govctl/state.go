package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/llm-dev-ops/governance-go/config"
)

// stateDir 返回 govctl 的本地状态目录，默认 ~/.govctl。
func stateDir(settings config.Settings) string {
	if settings.TokenFile != "" {
		return filepath.Dir(settings.TokenFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".govctl"
	}
	return filepath.Join(home, ".govctl")
}

func tokenFilePath(settings config.Settings) string {
	if settings.TokenFile != "" {
		return settings.TokenFile
	}
	return filepath.Join(stateDir(settings), "token")
}

func currentOrgPath(settings config.Settings) string {
	return filepath.Join(stateDir(settings), "current_org")
}

// loadToken 读取本地令牌，文件不存在时返回空串。
func loadToken(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// saveToken 持久化令牌，令牌为空时删除文件。
func saveToken(path, token string) error {
	if token == "" {
		err := os.Remove(path)
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func loadCurrentOrg(settings config.Settings) string {
	return loadToken(currentOrgPath(settings))
}

func saveCurrentOrg(settings config.Settings, id string) error {
	return saveToken(currentOrgPath(settings), id)
}
