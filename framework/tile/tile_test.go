package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	for _, code := range []string{"123m456p789s1122z", "19m19p19s1234567z", "5555m", "7z"} {
		h := MustParse(code)
		assert.Equal(t, code, h.String())
	}
	assert.Equal(t, "123m11z", MustParse("11z321m").String())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "1m", Man1.String())
	assert.Equal(t, "9p", Pin9.String())
	assert.Equal(t, "5s", So5.String())
	assert.Equal(t, "1z", East.String())
	assert.Equal(t, "7z", Red.String())
	assert.Equal(t, "Type(34)", Type(34).String())
}

func TestClassification(t *testing.T) {
	assert.True(t, IsSuit(int(Man1)))
	assert.True(t, IsSuit(int(So9)))
	assert.False(t, IsSuit(int(East)))
	assert.True(t, IsHonor(int(Red)))
	assert.Equal(t, 1, SuitOf(int(Pin3)))
	assert.Equal(t, -1, SuitOf(int(White)))

	assert.True(t, CanStartSequence(int(Man7)))
	assert.False(t, CanStartSequence(int(Man8)))
	assert.False(t, CanStartSequence(int(Pin9)))
	assert.False(t, CanStartSequence(int(East)))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, MustParse("1m").Validate())
	assert.NoError(t, MustParse("11112222333444z").Validate())

	var h Counts
	h[Man1] = 5
	assert.ErrorIs(t, h.Validate(), ErrTooManyCopies)

	h = MustParse("123456789m123456p")
	assert.ErrorIs(t, h.Validate(), ErrTooManyTiles)
}

func TestFromIndices(t *testing.T) {
	h, err := FromIndices([]int{0, 1, 2, 27, 27})
	require.NoError(t, err)
	assert.Equal(t, MustParse("123m11z"), h)
	assert.Equal(t, []int{0, 1, 2, 27, 27}, h.Indices())

	_, err = FromIndices([]int{34})
	assert.ErrorIs(t, err, ErrTypeOutOfRange)
	_, err = FromIndices([]int{5, 5, 5, 5, 5})
	assert.ErrorIs(t, err, ErrTooManyCopies)
}
