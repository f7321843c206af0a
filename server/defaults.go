package server

// DefaultLineLimits 返回随附 SSA-3373 模板各叙述字段的默认行数上限。
// 请求未提供 line_limits 时使用；GET /line-limits 原样暴露。
func DefaultLineLimits() map[string]int {
	return map[string]int{
		// 主要叙述字段
		"N5text[0]":        7,
		"N6text[0]":        4,
		"N7text[0]":        1,
		"N9IfYesField[0]":  1,
		"N10Field[0]":      1,
		"N11IfYesField[0]": 1,

		// 个人护理
		"N12Dress[0]":        1,
		"N12Bathe[0]":        1,
		"N12CareForHair[0]":  1,
		"N12Save[0]":         1,
		"N12FeedSelf[0]":     1,
		"N12UseTheToilet[0]": 1,
		"N12Other[0]":        1,
		"N12BIfYesField[0]":  2,
		"N12CIfYesField[0]":  3,

		// 饮食与家务
		"N13AIfYesField[0]":    2,
		"N13AHowOftenField[0]": 1,
		"N13AHowLong[0]":       1,
		"N13AAnyChngsField[0]": 1,
		"N13BIfNoField[0]":     3,
		"N14AField[0]":         2,
		"N14BField[0]":         1,
		"N14CIfYesField[0]":    1,
		"N14dField[0]":         2,

		// 出行
		"N15A[0]":               1,
		"N15AIfField[0]":        2,
		"N15CIfNoField[0]":      2,
		"N15DIfYouDontDrive[0]": 2,

		// 购物与财务
		"N16B[0]":        1,
		"N16C[0]":        1,
		"N17AExplain[0]": 2,
		"N17BIfYes[0]":   4,

		// 爱好
		"N18A[0]": 3,
		"N18B[0]": 2,
		"N18C[0]": 2,

		// 社交活动
		"N15BOtherField[0]": 1,
		"N19A[0]":           1,
		"N19B[0]":           1,
		"N19BHowOften[0]":   2,
		"N19CIfYes[0]":      2,
		"N19D[0]":           2,

		// 身体与认知限制
		"N20A[0]":      3,
		"N20C[0]":      1,
		"N20CIfYou[0]": 2,
		"N20D[0]":      2,
		"N20F[0]":      2,
		"N20G[0]":      2,
		"N20H[0]":      2,

		// 工作经历
		"N20IIfYesExplain[0]":  4,
		"N20IIfYesEmployer[0]": 1,
		"N20J[0]":              1,
		"N20K[0]":              2,
		"N20LIfYes[0]":         9,

		// 辅助器具
		"N21IfOther[0]":        1,
		"N21Which[0]":          2,
		"N21WhenPrescribed[0]": 2,
		"N21WhenDoYou[0]":      7,

		// 药物
		"N22Med1[0]":     1,
		"N22Effects1[0]": 1,
		"N22Med2[0]":     1,
		"N22Effects2[0]": 1,
		"N22Med3[0]":     1,
		"N22Effects3[0]": 1,
		"N22Med4[0]":     1,
		"N22Effects4[0]": 1,
		"N22Med5[0]":     1,
		"N22Effects5[0]": 1,

		// 备注
		"Remarks[0]": 13,
	}
}
