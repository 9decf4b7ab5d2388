package game

import "github.com/enescakir/emoji"

// Character is a playable persona. The symbol feeds the image generator
// prompt and the select screen.
type Character struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

var characters = []Character{
	{ID: 1, Name: "불꽃 대사왕", Symbol: emoji.Fire.String(), Description: "붉은 불꽃 아우라를 가진 열정적인 연기왕. 머리카락이 불꽃처럼 타오르고 빨간 망토를 두른 카리스마 넘치는 캐릭터"},
	{ID: 2, Name: "눈물 여왕", Symbol: emoji.Droplet.String(), Description: "푸른 물방울 아우라의 감성적인 여왕. 은빛 머리에 파란 드레스를 입고 눈물 같은 보석 왕관을 쓴 우아한 캐릭터"},
	{ID: 3, Name: "츤데레 검사", Symbol: emoji.BalanceScale.String(), Description: "보라색 아우라의 도도한 검사. 정의의 저울을 들고 검사 정장을 입은 쿨하지만 속은 다정한 캐릭터"},
	{ID: 4, Name: "열혈 형사", Symbol: emoji.MagnifyingGlassTiltedLeft.String(), Description: "황금빛 아우라의 정의로운 형사. 트렌치코트에 돋보기를 들고 다니는 열정적이고 정의감 넘치는 캐릭터"},
	{ID: 5, Name: "재벌 3세", Symbol: emoji.GemStone.String(), Description: "다이아몬드 아우라의 화려한 재벌. 금색 정장에 다이아몬드 반지를 끼고 고급스러운 분위기를 풍기는 캐릭터"},
	{ID: 6, Name: "천재 해커", Symbol: emoji.Laptop.String(), Description: "사이버 민트색 아우라의 천재 해커. 후드티에 해킹 고글을 쓰고 홀로그램 키보드를 두드리는 미래적인 캐릭터"},
	{ID: 7, Name: "전설의 조폭", Symbol: emoji.Dragon.String(), Description: "용의 아우라를 가진 전설의 조폭 보스. 검은 정장에 용 문신이 있고 카리스마 넘치는 근엄한 캐릭터"},
	{ID: 8, Name: "로맨스 요정", Symbol: emoji.Sparkles.String(), Description: "반짝이는 핑크 아우라의 로맨스 요정. 날개 달린 요정 드레스에 하트 지팡이를 든 사랑스러운 캐릭터"},
}

func CharacterByID(id int) (Character, bool) {
	for _, c := range characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

func Characters() []Character {
	out := make([]Character, len(characters))
	copy(out, characters)
	return out
}
