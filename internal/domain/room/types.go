package room

// Campus identifies the sites rooms belong to. The set is closed; new sites
// require a code change, matching how the catalogue is administered.
type Campus string

const (
	CampusZonaFranca Campus = "zona_franca"
	CampusCajasan    Campus = "cajasan"
	CampusBogota     Campus = "bogota"
	CampusCucuta     Campus = "cucuta"
	CampusGuatemala  Campus = "guatemala"
)

func (c Campus) String() string {
	return string(c)
}

func (c Campus) IsValid() bool {
	switch c {
	case CampusZonaFranca, CampusCajasan, CampusBogota, CampusCucuta, CampusGuatemala:
		return true
	default:
		return false
	}
}

func NewCampus(s string) (Campus, error) {
	campus := Campus(s)
	if !campus.IsValid() {
		return "", ErrInvalidCampus
	}
	return campus, nil
}

// ResourceTag is one of the fixed room amenities.
type ResourceTag string

const (
	TagPizarra   ResourceTag = "pizarra"
	TagProyector ResourceTag = "proyector"
	TagTelevisor ResourceTag = "televisor"
)

func (t ResourceTag) String() string {
	return string(t)
}

func (t ResourceTag) IsValid() bool {
	switch t {
	case TagPizarra, TagProyector, TagTelevisor:
		return true
	default:
		return false
	}
}
