package ai

import "github.com/gs1-tools/syntax-engine/lint"

// DefaultEntries returns the embedded default AI dictionary: a reasonably
// complete subset of the GS1 General Specifications table sufficient to
// exercise every element of the key-qualifier association engine, the
// cross-AI validators, and the DL URI path/query placement rules. A
// production dictionary would be generated from the full GS1 AI table;
// this one is handwritten but drawn from the same published AI codes and
// component shapes.
func DefaultEntries() []*Entry {
	return []*Entry{
		{Code: "00", RequiresFNC1: false, DLAttr: DLAttrNone, Attrs: "dlpkey", Components: []Component{
			{CharSet: CSetN, Min: 18, Max: 18, Optionality: Mandatory, Linters: []lint.Func{lint.CheckDigit}},
		}},
		{Code: "01", RequiresFNC1: false, DLAttr: DLAttrNone, Attrs: "dlpkey=22,10,21", Components: []Component{
			{CharSet: CSetN, Min: 14, Max: 14, Optionality: Mandatory, Linters: []lint.Func{lint.CheckDigit}},
		}},
		{Code: "02", RequiresFNC1: false, DLAttr: DLAttrNone, Attrs: "req=37", Components: []Component{
			{CharSet: CSetN, Min: 14, Max: 14, Optionality: Mandatory, Linters: []lint.Func{lint.CheckDigit}},
		}},
		{Code: "10", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 20, Optionality: Mandatory},
		}},
		{Code: "11", RequiresFNC1: false, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetN, Min: 6, Max: 6, Optionality: Mandatory, Linters: []lint.Func{lint.YYMMD0}},
		}},
		{Code: "13", RequiresFNC1: false, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetN, Min: 6, Max: 6, Optionality: Mandatory, Linters: []lint.Func{lint.YYMMD0}},
		}},
		{Code: "15", RequiresFNC1: false, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetN, Min: 6, Max: 6, Optionality: Mandatory, Linters: []lint.Func{lint.YYMMD0}},
		}},
		{Code: "17", RequiresFNC1: false, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetN, Min: 6, Max: 6, Optionality: Mandatory, Linters: []lint.Func{lint.YYMMD0}},
		}},
		{Code: "21", RequiresFNC1: true, DLAttr: DLAttrPermitted, Attrs: "req=01,8006", Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 20, Optionality: Mandatory},
		}},
		{Code: "22", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 20, Optionality: Mandatory},
		}},
		{Code: "37", RequiresFNC1: true, DLAttr: DLAttrPermitted, Attrs: "req=02,8026", Components: []Component{
			{CharSet: CSetN, Min: 1, Max: 8, Optionality: Mandatory},
		}},
		{Code: "90", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 30, Optionality: Mandatory},
		}},
		{Code: "91", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 90, Optionality: Mandatory},
		}},
		{Code: "92", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 90, Optionality: Mandatory},
		}},
		{Code: "93", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 90, Optionality: Mandatory},
		}},
		{Code: "94", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 90, Optionality: Mandatory},
		}},
		{Code: "95", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 90, Optionality: Mandatory},
		}},
		{Code: "96", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 90, Optionality: Mandatory},
		}},
		{Code: "97", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 90, Optionality: Mandatory},
		}},
		{Code: "98", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 90, Optionality: Mandatory},
		}},
		{Code: "99", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 90, Optionality: Mandatory},
		}},
		{Code: "235", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 28, Optionality: Mandatory},
		}},
		{Code: "250", RequiresFNC1: true, DLAttr: DLAttrPermitted, Attrs: "req=01,8006 req=21", Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 30, Optionality: Mandatory},
		}},
		{Code: "253", RequiresFNC1: true, DLAttr: DLAttrNone, Attrs: "dlpkey", Components: []Component{
			{CharSet: CSetN, Min: 13, Max: 13, Optionality: Mandatory, Linters: []lint.Func{lint.Key}},
			{CharSet: CSetX, Min: 0, Max: 17, Optionality: Optional},
		}},
		{Code: "255", RequiresFNC1: true, DLAttr: DLAttrNone, Attrs: "dlpkey", Components: []Component{
			{CharSet: CSetN, Min: 13, Max: 13, Optionality: Mandatory, Linters: []lint.Func{lint.Key}},
			{CharSet: CSetN, Min: 0, Max: 12, Optionality: Optional},
		}},
		{Code: "3921", RequiresFNC1: true, DLAttr: DLAttrPermitted, Attrs: "ex=392n req=01", Components: []Component{
			{CharSet: CSetN, Min: 1, Max: 15, Optionality: Mandatory},
		}},
		{Code: "3922", RequiresFNC1: true, DLAttr: DLAttrPermitted, Attrs: "ex=392n req=01", Components: []Component{
			{CharSet: CSetN, Min: 1, Max: 15, Optionality: Mandatory},
		}},
		{Code: "3930", RequiresFNC1: true, DLAttr: DLAttrPermitted, Attrs: "ex=391n", Components: []Component{
			{CharSet: CSetN, Min: 3, Max: 3, Optionality: Mandatory, Linters: []lint.Func{lint.ISO3166}},
			{CharSet: CSetN, Min: 1, Max: 15, Optionality: Mandatory},
		}},
		{Code: "410", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetN, Min: 13, Max: 13, Optionality: Mandatory, Linters: []lint.Func{lint.CheckDigit}},
		}},
		{Code: "414", RequiresFNC1: true, DLAttr: DLAttrNone, Attrs: "dlpkey", Components: []Component{
			{CharSet: CSetN, Min: 13, Max: 13, Optionality: Mandatory, Linters: []lint.Func{lint.CheckDigit}},
		}},
		{Code: "422", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetN, Min: 3, Max: 3, Optionality: Mandatory, Linters: []lint.Func{lint.ISO3166}},
		}},
		{Code: "423", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetN, Min: 3, Max: 15, Optionality: Mandatory, Linters: []lint.Func{lint.ISO3166List}},
		}},
		{Code: "4309", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetN, Min: 10, Max: 10, Optionality: Mandatory, Linters: []lint.Func{lint.Latitude}},
			{CharSet: CSetN, Min: 10, Max: 10, Optionality: Mandatory, Linters: []lint.Func{lint.Longitude}},
		}},
		{Code: "7003", RequiresFNC1: true, DLAttr: DLAttrPermitted, Components: []Component{
			{CharSet: CSetN, Min: 6, Max: 6, Optionality: Mandatory, Linters: []lint.Func{lint.YYMMDD}},
			{CharSet: CSetN, Min: 4, Max: 4, Optionality: Mandatory, Linters: []lint.Func{lint.HHMM}},
		}},
		{Code: "8003", RequiresFNC1: true, DLAttr: DLAttrNone, Attrs: "dlpkey", Components: []Component{
			{CharSet: CSetN, Min: 14, Max: 14, Optionality: Mandatory, Linters: []lint.Func{lint.KeyOff1}},
			{CharSet: CSetX, Min: 0, Max: 16, Optionality: Optional},
		}},
		{Code: "8004", RequiresFNC1: true, DLAttr: DLAttrNone, Attrs: "dlpkey", Components: []Component{
			{CharSet: CSetX, Min: 1, Max: 30, Optionality: Mandatory},
		}},
		{Code: "8006", RequiresFNC1: false, DLAttr: DLAttrNone, Attrs: "dlpkey=22,10,21", Components: []Component{
			{CharSet: CSetN, Min: 14, Max: 14, Optionality: Mandatory, Linters: []lint.Func{lint.CheckDigit}},
			{CharSet: CSetN, Min: 2, Max: 2, Optionality: Mandatory},
			{CharSet: CSetN, Min: 2, Max: 2, Optionality: Mandatory},
		}},
		{Code: "8010", RequiresFNC1: true, DLAttr: DLAttrNone, Attrs: "dlpkey=8011", Components: []Component{
			{CharSet: CSetY, Min: 1, Max: 30, Optionality: Mandatory},
		}},
		{Code: "8011", RequiresFNC1: true, DLAttr: DLAttrPermitted, Attrs: "req=8010", Components: []Component{
			{CharSet: CSetN, Min: 1, Max: 12, Optionality: Mandatory},
		}},
		{Code: "8017", RequiresFNC1: false, DLAttr: DLAttrNone, Attrs: "dlpkey", Components: []Component{
			{CharSet: CSetN, Min: 18, Max: 18, Optionality: Mandatory, Linters: []lint.Func{lint.CheckDigit}},
		}},
		{Code: "8018", RequiresFNC1: false, DLAttr: DLAttrNone, Attrs: "dlpkey", Components: []Component{
			{CharSet: CSetN, Min: 18, Max: 18, Optionality: Mandatory, Linters: []lint.Func{lint.CheckDigit}},
		}},
		{Code: "8026", RequiresFNC1: false, DLAttr: DLAttrNone, Attrs: "dlpkey=22,10,21", Components: []Component{
			{CharSet: CSetN, Min: 14, Max: 14, Optionality: Mandatory, Linters: []lint.Func{lint.CheckDigit}},
			{CharSet: CSetN, Min: 2, Max: 2, Optionality: Mandatory},
			{CharSet: CSetN, Min: 2, Max: 2, Optionality: Mandatory},
		}},
		{Code: "8030", RequiresFNC1: true, DLAttr: DLAttrNone, Attrs: "req=00,01+21,253,255,8003,8004,8006+21,8010+8011,8017,8018", Components: []Component{
			{CharSet: CSetZ, Min: 1, Max: 512, Optionality: Mandatory},
		}},
	}
}
