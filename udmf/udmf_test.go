package udmf

import "testing"

const sampleMap = `
namespace = "doom";
thing
{
x = 32.0;
y = -64.0;
type = 1;
angle = 90;
}
vertex
{
x = 0.0;
y = 0.0;
}
vertex
{
x = 64.0;
y = 0.0;
}
linedef
{
v1 = 0;
v2 = 1;
sidefront = 0;
}
sidedef
{
sector = 0;
texturemiddle = "STARTAN2";
}
sector
{
heightfloor = 0;
heightceiling = 128;
texturefloor = "FLOOR0_1";
textureceiling = "CEIL1_1";
lightlevel = 200;
}
`

func TestParseSampleMap(t *testing.T) {
	m, err := Parse(sampleMap)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Namespace != "doom" {
		t.Fatalf("got namespace %q, want doom", m.Namespace)
	}
	if len(m.Things) != 1 || m.Things[0].EdNum != 1 || m.Things[0].Angle != 90 {
		t.Fatalf("got things %+v", m.Things)
	}
	if len(m.Vertices) != 2 || m.Vertices[1].X != 64 {
		t.Fatalf("got vertices %+v", m.Vertices)
	}
	if len(m.Linedefs) != 1 || m.Linedefs[0].SideBack != defaultSidedefIndex {
		t.Fatalf("got linedefs %+v", m.Linedefs)
	}
	if len(m.Sidedefs) != 1 || m.Sidedefs[0].TextureMiddle != "STARTAN2" || m.Sidedefs[0].TextureTop != defaultSidedefTexture {
		t.Fatalf("got sidedefs %+v", m.Sidedefs)
	}
	if len(m.Sectors) != 1 || m.Sectors[0].LightLevel != 200 || m.Sectors[0].HeightCeiling != 128 {
		t.Fatalf("got sectors %+v", m.Sectors)
	}
}

func TestParseMissingNamespaceFails(t *testing.T) {
	_, err := Parse(`thing { x = 0.0; y = 0.0; type = 1; };`)
	if err == nil {
		t.Fatal("expected an error for a map missing its namespace assignment")
	}
}

func TestParseMissingRequiredKeyFails(t *testing.T) {
	_, err := Parse(`namespace = "doom"; vertex { x = 0.0; }`)
	if err == nil {
		t.Fatal("expected an error for a vertex missing its y property")
	}
	if _, ok := err.(*RequiredKeyNotFoundError); !ok {
		t.Fatalf("got error of type %T, want *RequiredKeyNotFoundError", err)
	}
}

func TestParseUnknownObjectTypeFails(t *testing.T) {
	_, err := Parse(`namespace = "doom"; widget { foo = 1; }`)
	if err == nil {
		t.Fatal("expected an error for an unknown object type")
	}
	if _, ok := err.(*UnknownObjectTypeError); !ok {
		t.Fatalf("got error of type %T, want *UnknownObjectTypeError", err)
	}
}

func TestParseColourDefaultsAndRadixes(t *testing.T) {
	src := `
namespace = "doom";
sector
{
texturefloor = "FLOOR0_1";
textureceiling = "CEIL1_1";
color_walltop = "0xFF0000";
color_floor = "16711680";
}
`
	m, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sec := m.Sectors[0]
	if sec.ColorWallTop != (Colour{R: 255, G: 0, B: 0}) {
		t.Fatalf("got color_walltop %+v, want red", sec.ColorWallTop)
	}
	if sec.ColorFloor != (Colour{R: 255, G: 0, B: 0}) {
		t.Fatalf("got color_floor %+v, want red", sec.ColorFloor)
	}
	if sec.ColorSprites != defaultMultiplicativeColour {
		t.Fatalf("got color_sprites %+v, want default white", sec.ColorSprites)
	}
	if sec.ColorWallBottom != defaultAdditiveColour {
		t.Fatalf("got color_wallbottom %+v, want default black", sec.ColorWallBottom)
	}
}
