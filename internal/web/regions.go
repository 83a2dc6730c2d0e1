package web

// RegionOption pairs an ISO 3166-1 alpha-2 code with its display name.
type RegionOption struct {
	Code string
	Name string
}

// RegionOptions is the preset region list offered in the control bar. The
// custom region field accepts any 2-letter code beyond these.
var RegionOptions = []RegionOption{
	{"KR", "대한민국"}, {"US", "미국"}, {"JP", "일본"}, {"IN", "인도"}, {"GB", "영국"},
	{"DE", "독일"}, {"FR", "프랑스"}, {"BR", "브라질"}, {"MX", "멕시코"}, {"CA", "캐나다"},
	{"AU", "호주"}, {"VN", "베트남"}, {"TH", "태국"}, {"ID", "인도네시아"}, {"TR", "튀르키예"},
	{"SA", "사우디아라비아"}, {"AE", "아랍에미리트"}, {"ES", "스페인"}, {"IT", "이탈리아"}, {"RU", "러시아"},
}
