package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParams(t *testing.T) {
	assert.Equal(t, []string{"Bucket", "Key"}, PathParams("/{Bucket}/{Key}?uploads"))
	assert.Equal(t, []string{"Id"}, PathParams("/things/{Id}#Action={Ignored}"))
	assert.Nil(t, PathParams("/"))
}

func TestNormalizeGreedy(t *testing.T) {
	out, greedy := NormalizeGreedy("/{Bucket}/{Key+}")
	assert.Equal(t, "/{Bucket}/{Key}", out)
	assert.Equal(t, []string{"Key"}, greedy)

	out, greedy = NormalizeGreedy("/plain/{Id}")
	assert.Equal(t, "/plain/{Id}", out)
	assert.Empty(t, greedy)
}

func TestAppendFragment(t *testing.T) {
	assert.Equal(t, "/#Action=Foo", AppendFragment("/", "Action=Foo"))
	assert.Equal(t, "/x#uploads&Action=Foo", AppendFragment("/x#uploads", "Action=Foo"))
}

func TestDeparameterize(t *testing.T) {
	assert.Equal(t, "/{param}/{param}", Deparameterize("/{Bucket}/{Key}#uploads"))
	assert.Equal(t, Deparameterize("/{A}#x"), Deparameterize("/{B}#y"))
	assert.NotEqual(t, Deparameterize("/{A}/x"), Deparameterize("/{A}/y"))
}

func TestRefs(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Foo", SchemaRef("Foo"))
	assert.Equal(t, "#/components/parameters/X-Amz-Date", ParameterRef("X-Amz-Date"))
	assert.Equal(t, "Foo", SchemaNameFromRef(SchemaRef("Foo")))
	assert.Empty(t, SchemaNameFromRef(ParameterRef("Foo")))
}
