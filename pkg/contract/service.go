package contract

// NameValuePair is a generic named string value, used for service type
// extensions.
type NameValuePair struct {
    Name  string
    Value string
}

func (NameValuePair) Entity() string { return "NameValuePair" }

func (p *NameValuePair) decode(d *decoder) {
    *p = NameValuePair{Name: d.str("Name", true), Value: d.str("Value", true)}
}

func (p NameValuePair) encode(e *encoder) {
    e.str("Name", p.Name)
    e.str("Value", p.Value)
}

func (p NameValuePair) MarshalJSON() ([]byte, error) { return Marshal(&p) }
func (p *NameValuePair) UnmarshalJSON(b []byte) error { return Unmarshal(b, p) }

// ServiceTypeDescription describes a service type registered by a manifest.
// HasPersistedState applies to stateful types and UseImplicitHost to
// stateless ones; encoding writes only the flag for Kind.
type ServiceTypeDescription struct {
    Kind                 ServiceKind
    ServiceTypeName      string
    PlacementConstraints string
    HasPersistedState    bool
    UseImplicitHost      bool
    Extensions           []NameValuePair
}

func NewServiceTypeDescription(kind ServiceKind, typeName string, extensions ...NameValuePair) ServiceTypeDescription {
    return ServiceTypeDescription{Kind: kind, ServiceTypeName: typeName, Extensions: append([]NameValuePair{}, extensions...)}
}

func (ServiceTypeDescription) Entity() string { return "ServiceTypeDescription" }

func (s *ServiceTypeDescription) decode(d *decoder) {
    *s = NewServiceTypeDescription(
        ServiceKind(d.enum("Kind", true, func(v string) bool { return ServiceKind(v).Valid() }, ErrTypeMismatch)),
        d.str("ServiceTypeName", true),
    )
    s.PlacementConstraints = d.str("PlacementConstraints", false)
    s.HasPersistedState = d.boolean("HasPersistedState", false)
    s.UseImplicitHost = d.boolean("UseImplicitHost", false)
    d.list("Extensions", func(d *decoder) {
        var p NameValuePair
        p.decode(d)
        s.Extensions = append(s.Extensions, p)
    })
}

func (s ServiceTypeDescription) encode(e *encoder) {
    e.str("Kind", string(s.Kind))
    e.str("ServiceTypeName", s.ServiceTypeName)
    e.str("PlacementConstraints", s.PlacementConstraints)
    switch s.Kind {
    case ServiceKindStateful:
        e.boolean("HasPersistedState", s.HasPersistedState)
    case ServiceKindStateless:
        e.boolean("UseImplicitHost", s.UseImplicitHost)
    }
    e.list("Extensions", len(s.Extensions), func(i int, e *encoder) { s.Extensions[i].encode(e) })
}

func (s ServiceTypeDescription) MarshalJSON() ([]byte, error) { return Marshal(&s) }
func (s *ServiceTypeDescription) UnmarshalJSON(b []byte) error { return Unmarshal(b, s) }

// ServiceTypeInfo pairs a service type with the manifest that declares it.
type ServiceTypeInfo struct {
    ServiceTypeDescription ServiceTypeDescription
    ServiceManifestName    string
    ServiceManifestVersion string
    IsServiceGroup         bool
}

func NewServiceTypeInfo(desc ServiceTypeDescription, manifestName, manifestVersion string) ServiceTypeInfo {
    return ServiceTypeInfo{ServiceTypeDescription: desc, ServiceManifestName: manifestName, ServiceManifestVersion: manifestVersion}
}

func (ServiceTypeInfo) Entity() string { return "ServiceTypeInfo" }

func (s *ServiceTypeInfo) decode(d *decoder) {
    *s = ServiceTypeInfo{}
    d.object("ServiceTypeDescription", true, s.ServiceTypeDescription.decode)
    s.ServiceManifestName = d.str("ServiceManifestName", true)
    s.ServiceManifestVersion = d.str("ServiceManifestVersion", true)
    s.IsServiceGroup = d.boolean("IsServiceGroup", false)
}

func (s ServiceTypeInfo) encode(e *encoder) {
    e.object("ServiceTypeDescription", s.ServiceTypeDescription.encode)
    e.str("ServiceManifestName", s.ServiceManifestName)
    e.str("ServiceManifestVersion", s.ServiceManifestVersion)
    e.boolean("IsServiceGroup", s.IsServiceGroup)
}

func (s ServiceTypeInfo) MarshalJSON() ([]byte, error) { return Marshal(&s) }
func (s *ServiceTypeInfo) UnmarshalJSON(b []byte) error { return Unmarshal(b, s) }

// ServiceManifest is the raw XML manifest returned by the gateway.
type ServiceManifest struct {
    Manifest string
}

func (ServiceManifest) Entity() string { return "ServiceManifest" }

func (m *ServiceManifest) decode(d *decoder) { *m = ServiceManifest{Manifest: d.str("Manifest", true)} }

func (m ServiceManifest) encode(e *encoder) { e.str("Manifest", m.Manifest) }

func (m ServiceManifest) MarshalJSON() ([]byte, error) { return Marshal(&m) }
func (m *ServiceManifest) UnmarshalJSON(b []byte) error { return Unmarshal(b, m) }
