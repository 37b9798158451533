package export

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const reportCSS = `html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}` +
	`body{font-family:'Apple SD Gothic Neo','Malgun Gothic',sans-serif;background:#fff;color:#1c1917;` +
	`max-width:880px;margin:0 auto;padding:1rem 1.25rem;line-height:1.6;font-size:0.92rem;}` +
	`h1{font-size:1.5rem;border-bottom:2px solid #1c1917;padding-bottom:0.4rem;}` +
	`h2{font-size:1.15rem;margin-top:1.6rem;border-bottom:1px solid #d6d3d1;padding-bottom:0.25rem;}` +
	`h3{font-size:1rem;margin-top:1.1rem;}` +
	`a{color:#1d4ed8;text-decoration:underline;}` +
	`hr{border:0;border-top:1px solid #e7e5e4;margin:1.4rem 0;}` +
	`table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.82rem;}` +
	`th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}` +
	`thead th{background:#f1f5f9;font-weight:700;}` +
	`@media print{@page{size:A4;margin:14mm;}h2{break-after:avoid;}}`

// HTMLReport converts the Markdown report into a standalone printable HTML
// document.
func HTMLReport(markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html lang='ko'><head><meta charset='utf-8'>" +
		"<title>선행특허 조사 리포트</title>" +
		"<style>" + reportCSS + "</style></head><body>" +
		content.String() +
		"</body></html>", nil
}
