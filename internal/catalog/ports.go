package catalog

// Port is a dashboard catalog entry. Coordinates are WGS84 lat/lon.
type Port struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

var ports = []Port{
	{ID: "rotterdam", Name: "Port of Rotterdam", Country: "Netherlands", Lat: 51.9496, Lon: 4.1453},
	{ID: "hamburg", Name: "Port of Hamburg", Country: "Germany", Lat: 53.5461, Lon: 9.9661},
	{ID: "antwerp", Name: "Port of Antwerp-Bruges", Country: "Belgium", Lat: 51.2469, Lon: 4.4036},
	{ID: "valencia", Name: "Port of Valencia", Country: "Spain", Lat: 39.4448, Lon: -0.3166},
	{ID: "piraeus", Name: "Port of Piraeus", Country: "Greece", Lat: 37.9421, Lon: 23.6465},
	{ID: "gdansk", Name: "Port of Gdansk", Country: "Poland", Lat: 54.4008, Lon: 18.6746},
	{ID: "marseille", Name: "Port of Marseille Fos", Country: "France", Lat: 43.3442, Lon: 5.3228},
	{ID: "reykjavik", Name: "Port of Reykjavik", Country: "Iceland", Lat: 64.1541, Lon: -21.9408},
}

// Ports returns the port catalog in display order.
func Ports() []Port {
	out := make([]Port, len(ports))
	copy(out, ports)
	return out
}

// PortByID looks up a port.
func PortByID(id string) (Port, bool) {
	for _, p := range ports {
		if p.ID == id {
			return p, true
		}
	}
	return Port{}, false
}

// DashboardScenario is the sea-level scenario selectable on the map view.
// Distinct from ClimateScenario: keyed by target year, not emissions pathway.
type DashboardScenario struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Description string `json:"description"`
}

var dashboardScenarios = []DashboardScenario{
	{ID: "slr-2030", Name: "Near-term outlook", Year: 2030, Description: "Sea level rise projected to 2030"},
	{ID: "slr-2050", Name: "Mid-century outlook", Year: 2050, Description: "Sea level rise projected to 2050"},
	{ID: "slr-2100", Name: "End-of-century outlook", Year: 2100, Description: "Sea level rise projected to 2100"},
}

// DashboardScenarios returns the dashboard scenario catalog.
func DashboardScenarios() []DashboardScenario {
	out := make([]DashboardScenario, len(dashboardScenarios))
	copy(out, dashboardScenarios)
	return out
}

// DashboardScenarioByID looks up a dashboard scenario.
func DashboardScenarioByID(id string) (DashboardScenario, bool) {
	for _, s := range dashboardScenarios {
		if s.ID == id {
			return s, true
		}
	}
	return DashboardScenario{}, false
}
