package timezone

import "time"

// ClinicTimezone es la zona fija de la clínica: toda fecha+hora que llega
// por la API se interpreta aquí y se persiste en UTC.
const ClinicTimezone = "America/Mexico_City"

func Location() *time.Location {
	loc, err := time.LoadLocation(ClinicTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate interpreta "2006-01-02" como medianoche local de la clínica.
func ParseDate(fecha string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", fecha, Location())
}

// ParseDateTime combina fecha "2006-01-02" y hora "15:04" en un instante
// local de la clínica.
func ParseDateTime(fecha, hora string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", fecha+" "+hora, Location())
}
