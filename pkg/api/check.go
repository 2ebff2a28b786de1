package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/passrank/passrank-api/pkg/db"
	"github.com/passrank/passrank-api/pkg/models"
	"github.com/passrank/passrank-api/pkg/strength"
	"github.com/passrank/passrank-api/pkg/util"
)

func check(w http.ResponseWriter, r *http.Request) {
	body := util.HttpBody(r)
	if body == nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	var req models.CheckReq
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	// Empty passwords are fine, a missing field is not.
	if req.Password == nil {
		http.Error(w, "Missing password field", http.StatusBadRequest)
		return
	}

	rep := strength.EvaluateWith(*req.Password, util.Config.Thresholds)

	common := false
	if db.Db != nil && *req.Password != "" {
		c, err := db.IsCommon(*req.Password)
		if err != nil {
			sentry.CaptureException(err)
		} else {
			common = c
		}
	}
	if common {
		rep.Warnings = append(rep.Warnings, "This password appears in breached password lists")
	}

	evaluations.WithLabelValues(rep.Category.String()).Inc()

	resp, _ := json.Marshal(models.CheckResp{
		EntropyBits: rep.EntropyBits,
		Category:    rep.Category.String(),
		Length:      rep.Length,
		PoolSize:    rep.PoolSize,
		Classes: models.ClassesResp{
			Uppercase: rep.Classes.Upper,
			Lowercase: rep.Classes.Lower,
			Digits:    rep.Classes.Digit,
			Symbols:   rep.Classes.Symbol,
		},
		Suggestions:    rep.Suggestions,
		Warnings:       rep.Warnings,
		PatternScore:   rep.PatternScore,
		CrackTime:      rep.CrackTime,
		CommonPassword: common,
	})

	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}
