package shanten

// KnownCase 记法与一般型向听数
type KnownCase struct {
	Code string
	Want int8
}

// KnownCases 手工核对过的牌例，最后一段是同种牌用满 4 张导致孤张不足的形状
var KnownCases = []KnownCase{
	{"11m19p19s1234567z", 7},
	{"19m19p19s1234567z", 8},
	{"123m456p789s1122z", 0},
	{"123m456p789s11222z", -1},
	{"123m456p789s2z", 0},
	{"12389m456p12789s1z", 1},
	{"12389m456p1289s11z", 1},
	{"133345568m23677z", 2},
	{"234p567s", 1},
	{"222345p1234567z", 4},
	{"2344456p123456z", 4},
	{"11222345p12345z", 3},
	{"2234556788p123z", 2},
	{"1111m123p112233s", 1},
	{"1111234444m1111p", 1},
	{"11112222333444z", 1},
	{"1111247777m", 1},
	{"1111247777m1112z", 1},
	{"11114444m", 1},
	{"111124m1111z", 1},
	{"1111444478m", 2},
	{"1111247777m1111z", 1},
	{"1111z", 1},
	{"123m1111z", 1},
	{"11112222z", 1},
	{"123m11p11112222z", 2},
}
