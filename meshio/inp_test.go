package meshio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
)

const sampleInp = `*NODE
1,0.0,0.0,0.0
2,1.0,0.0,0.0
3,0.0,1.0,0.0
4,0.0,0.0,1.0
*ELEMENT, TYPE=C3D4, ELSET=eC3D4
1,1,2,3,4
*ELEMENT, TYPE=C3D8, ELSET=eC3D8
1,1,2,3,4,5,6,7,8
*BOUNDARY
1,1,3
`

func TestParseTetMesh(t *testing.T) {
	m, err := parseTetMesh(strings.NewReader(sampleInp))
	require.NoError(t, err)

	require.Len(t, m.Nodes, 4)
	assert.Equal(t, v3.Vec{X: 0, Y: 0, Z: 0}, m.Nodes[0])
	assert.Equal(t, v3.Vec{X: 1, Y: 0, Z: 0}, m.Nodes[1])

	require.Len(t, m.Elements, 1, "the C3D8 element and *BOUNDARY section must be ignored")
	assert.Equal(t, [4]int{0, 1, 2, 3}, m.Elements[0])
}

func TestParseTetMeshMalformedNode(t *testing.T) {
	bad := "*NODE\n1,0.0,0.0\n"
	_, err := parseTetMesh(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestParseTetMeshUndefinedNodeReference(t *testing.T) {
	bad := "*NODE\n1,0,0,0\n*ELEMENT, TYPE=C3D4\n1,1,2,3,4\n"
	_, err := parseTetMesh(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestClassifyKeyword(t *testing.T) {
	assert.Equal(t, sectionNode, classifyKeyword("*NODE"))
	assert.Equal(t, sectionElementC3D4, classifyKeyword("*ELEMENT, TYPE=C3D4, ELSET=eC3D4"))
	assert.Equal(t, sectionOther, classifyKeyword("*ELEMENT, TYPE=C3D8"))
	assert.Equal(t, sectionOther, classifyKeyword("*BOUNDARY"))
}
