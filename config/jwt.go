package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// 访问令牌有效期，单位秒
	Expire int `json:"expire" yaml:"expire"`
}
