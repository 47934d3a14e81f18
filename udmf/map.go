package udmf

import "strconv"

// Parse parses a complete TEXTMAP lump's text into a Map, dispatching each
// data block found to its typed record by the block's leading identifier.
func Parse(src string) (*Map, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	namespace, objects, err := p.parseDocument()
	if err != nil {
		return nil, err
	}

	m := &Map{Namespace: namespace}
	for _, obj := range objects {
		switch objectTypeFromName(obj.typeName) {
		case Thing:
			t, err := newThing(obj.data)
			if err != nil {
				return nil, err
			}
			m.Things = append(m.Things, t)
		case Linedef:
			l, err := newLinedef(obj.data)
			if err != nil {
				return nil, err
			}
			m.Linedefs = append(m.Linedefs, l)
		case Sidedef:
			s, err := newSidedef(obj.data)
			if err != nil {
				return nil, err
			}
			m.Sidedefs = append(m.Sidedefs, s)
		case Sector:
			s, err := newSector(obj.data)
			if err != nil {
				return nil, err
			}
			m.Sectors = append(m.Sectors, s)
		case Vertex:
			v, err := newVertex(obj.data)
			if err != nil {
				return nil, err
			}
			m.Vertices = append(m.Vertices, v)
		default:
			return nil, &UnknownObjectTypeError{Name: obj.typeName}
		}
	}
	return m, nil
}

func required(data PropMap, key string) (string, error) {
	v, ok := data[key]
	if !ok {
		return "", &RequiredKeyNotFoundError{Key: key}
	}
	return v, nil
}

func optionalString(data PropMap, key, def string) string {
	if v, ok := data[key]; ok {
		return v
	}
	return def
}

func requiredFloat32(data PropMap, key string) (float32, error) {
	raw, err := required(data, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, &DatumConversionFailedError{Key: key, Datum: raw, Err: err}
	}
	return float32(f), nil
}

func optionalFloat32(data PropMap, key string, def float32) (float32, error) {
	raw, ok := data[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, &DatumConversionFailedError{Key: key, Datum: raw, Err: err}
	}
	return float32(f), nil
}

func requiredUint32(data PropMap, key string) (uint32, error) {
	raw, err := required(data, key)
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &DatumConversionFailedError{Key: key, Datum: raw, Err: err}
	}
	return uint32(u), nil
}

func optionalUint32(data PropMap, key string, def uint32) (uint32, error) {
	raw, ok := data[key]
	if !ok {
		return def, nil
	}
	u, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &DatumConversionFailedError{Key: key, Datum: raw, Err: err}
	}
	return uint32(u), nil
}

func optionalInt32(data PropMap, key string, def int32) (int32, error) {
	raw, ok := data[key]
	if !ok {
		return def, nil
	}
	i, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &DatumConversionFailedError{Key: key, Datum: raw, Err: err}
	}
	return int32(i), nil
}

func optionalSidedefIndex(data PropMap, key string) (SidedefIndex, error) {
	raw, ok := data[key]
	if !ok {
		return defaultSidedefIndex, nil
	}
	i, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &DatumConversionFailedError{Key: key, Datum: raw, Err: err}
	}
	return SidedefIndex(i), nil
}

func optionalLightLevel(data PropMap, key string) (LightLevel, error) {
	raw, ok := data[key]
	if !ok {
		return defaultLightLevel, nil
	}
	i, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &DatumConversionFailedError{Key: key, Datum: raw, Err: err}
	}
	return LightLevel(i), nil
}

func optionalSidedefTexture(data PropMap, key string) SidedefTexture {
	if v, ok := data[key]; ok {
		return SidedefTexture(v)
	}
	return defaultSidedefTexture
}

func optionalColour(data PropMap, key string, def Colour) (Colour, error) {
	raw, ok := data[key]
	if !ok {
		return def, nil
	}
	c, err := parseColour(raw)
	if err != nil {
		return Colour{}, &DatumConversionFailedError{Key: key, Datum: raw, Err: err}
	}
	return c, nil
}

func newThing(data PropMap) (Thing, error) {
	x, err := requiredFloat32(data, "x")
	if err != nil {
		return Thing{}, err
	}
	y, err := requiredFloat32(data, "y")
	if err != nil {
		return Thing{}, err
	}
	ednum, err := requiredUint32(data, "type")
	if err != nil {
		return Thing{}, err
	}
	height, err := optionalFloat32(data, "height", 0)
	if err != nil {
		return Thing{}, err
	}
	angle, err := optionalInt32(data, "angle", 0)
	if err != nil {
		return Thing{}, err
	}
	id, err := optionalUint32(data, "id", 0)
	if err != nil {
		return Thing{}, err
	}
	return Thing{X: x, Y: y, Height: height, Angle: angle, EdNum: ednum, ID: id, Props: data}, nil
}

func newLinedef(data PropMap) (Linedef, error) {
	v1, err := requiredUint32(data, "v1")
	if err != nil {
		return Linedef{}, err
	}
	v2, err := requiredUint32(data, "v2")
	if err != nil {
		return Linedef{}, err
	}
	front, err := requiredUint32(data, "sidefront")
	if err != nil {
		return Linedef{}, err
	}
	back, err := optionalSidedefIndex(data, "sideback")
	if err != nil {
		return Linedef{}, err
	}
	id, err := optionalUint32(data, "id", 0)
	if err != nil {
		return Linedef{}, err
	}
	return Linedef{V1: v1, V2: v2, ID: id, SideFront: front, SideBack: back, Props: data}, nil
}

func newSidedef(data PropMap) (Sidedef, error) {
	sector, err := requiredUint32(data, "sector")
	if err != nil {
		return Sidedef{}, err
	}
	offX, err := optionalInt32(data, "offsetx", 0)
	if err != nil {
		return Sidedef{}, err
	}
	offY, err := optionalInt32(data, "offsety", 0)
	if err != nil {
		return Sidedef{}, err
	}
	return Sidedef{
		Sector:          sector,
		OffsetX:         offX,
		OffsetY:         offY,
		TextureTop:      optionalSidedefTexture(data, "texturetop"),
		TextureMiddle:   optionalSidedefTexture(data, "texturemiddle"),
		TextureBottom:   optionalSidedefTexture(data, "texturebottom"),
		Props:           data,
	}, nil
}

func newSector(data PropMap) (Sector, error) {
	floor, err := required(data, "texturefloor")
	if err != nil {
		return Sector{}, err
	}
	ceiling, err := required(data, "textureceiling")
	if err != nil {
		return Sector{}, err
	}
	heightFloor, err := optionalInt32(data, "heightfloor", 0)
	if err != nil {
		return Sector{}, err
	}
	heightCeiling, err := optionalInt32(data, "heightceiling", 0)
	if err != nil {
		return Sector{}, err
	}
	lightLevel, err := optionalLightLevel(data, "lightlevel")
	if err != nil {
		return Sector{}, err
	}
	id, err := optionalUint32(data, "id", 0)
	if err != nil {
		return Sector{}, err
	}
	special, err := optionalUint32(data, "special", 0)
	if err != nil {
		return Sector{}, err
	}
	sprites, err := optionalColour(data, "color_sprites", defaultMultiplicativeColour)
	if err != nil {
		return Sector{}, err
	}
	wallTop, err := optionalColour(data, "color_walltop", defaultMultiplicativeColour)
	if err != nil {
		return Sector{}, err
	}
	ceilColour, err := optionalColour(data, "color_ceiling", defaultMultiplicativeColour)
	if err != nil {
		return Sector{}, err
	}
	floorColour, err := optionalColour(data, "color_floor", defaultMultiplicativeColour)
	if err != nil {
		return Sector{}, err
	}
	wallBottom, err := optionalColour(data, "color_wallbottom", defaultAdditiveColour)
	if err != nil {
		return Sector{}, err
	}
	return Sector{
		TextureFloor:     floor,
		TextureCeiling:   ceiling,
		HeightFloor:      heightFloor,
		HeightCeiling:    heightCeiling,
		LightLevel:       lightLevel,
		Special:          special,
		ID:               id,
		ColorSprites:     sprites,
		ColorWallTop:     wallTop,
		ColorCeiling:     ceilColour,
		ColorFloor:       floorColour,
		ColorWallBottom:  wallBottom,
		Props:            data,
	}, nil
}

func newVertex(data PropMap) (Vertex, error) {
	x, err := requiredFloat32(data, "x")
	if err != nil {
		return Vertex{}, err
	}
	y, err := requiredFloat32(data, "y")
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{X: x, Y: y, Props: data}, nil
}
