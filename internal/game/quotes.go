package game

import "github.com/valyala/fastrand"

// Quote is one source line from the catalog of famous Korean movie lines.
// The round sentence is an AI remix of one of these around the players'
// keywords.
type Quote struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Actor     string `json:"actor"`
	Character string `json:"character"`
	Movie     string `json:"movie"`
	Audio     string `json:"audio"`
}

var quotes = []Quote{
	{ID: 1, Text: "느그 서장 남천동 살제?", Actor: "최민식", Character: "최익현", Movie: "범죄와의 전쟁", Audio: "se_001.m4a"},
	{ID: 2, Text: "묻고 더블로 가!", Actor: "김응수", Character: "곽철용", Movie: "타짜", Audio: "se_002.m4a"},
	{ID: 3, Text: "어이가 없네?", Actor: "유아인", Character: "조태오", Movie: "베테랑", Audio: "se_003.m4a"},
	{ID: 4, Text: "살려는 드릴게.", Actor: "박성웅", Character: "이중구", Movie: "신세계", Audio: "se_004.m4a"},
	{ID: 5, Text: "누구냐, 넌.", Actor: "최민식", Character: "오대수", Movie: "올드보이", Audio: "se_005.m4a"},
	{ID: 6, Text: "이거 방탄유리야", Actor: "원빈", Character: "차태식", Movie: "아저씨", Audio: "se_006.m4a"},
	{ID: 7, Text: "너나 잘하세요.", Actor: "이영애", Character: "이금자", Movie: "친절한 금자씨", Audio: "se_007.m4a"},
	{ID: 8, Text: "니가 가라 하와이.", Actor: "장동건", Character: "한동수", Movie: "친구", Audio: "se_008.m4a"},
	{ID: 9, Text: "꼭 다 가져가야만 속이 후련했냐!", Actor: "김래원", Character: "오태식", Movie: "해바라기", Audio: "se_009.m4a"},
}

func QuoteByID(id int) (Quote, bool) {
	for _, q := range quotes {
		if q.ID == id {
			return q, true
		}
	}
	return Quote{}, false
}

func RandomQuote() Quote {
	return quotes[fastrand.Uint32n(uint32(len(quotes)))]
}

func Quotes() []Quote {
	out := make([]Quote, len(quotes))
	copy(out, quotes)
	return out
}
