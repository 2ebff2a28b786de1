package models

type CheckReq struct {
	Password *string `json:"password"`
}

type ClassesResp struct {
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}

type CheckResp struct {
	EntropyBits    float64     `json:"entropyBits"`
	Category       string      `json:"category"`
	Length         int         `json:"length"`
	PoolSize       int         `json:"poolSize"`
	Classes        ClassesResp `json:"classes"`
	Suggestions    []string    `json:"suggestions"`
	Warnings       []string    `json:"warnings"`
	PatternScore   int         `json:"patternScore"`
	CrackTime      string      `json:"crackTime"`
	CommonPassword bool        `json:"commonPassword"`
}
