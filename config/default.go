package config

import _ "embed"

// DefaultConfigYAML 编译进二进制的默认配置，可被外部配置文件和环境变量覆盖
//
//go:embed config.yaml
var DefaultConfigYAML []byte
