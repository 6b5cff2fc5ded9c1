package stdlib

import (
	"strings"
	"time"

	"github.com/rx-lang/rx/internal/interp"
	"github.com/rx-lang/rx/internal/rxerr"
	"github.com/rx-lang/rx/internal/token"
)

// Time builds the `time` library, grounded on
// original_source/src/libraries/time/TimeLibrary.cpp: now (monotonic
// ms), timestamp (seconds), strftime-style format, diff, sleep,
// date_parts, add/subtract with unit-carrying arithmetic, and the
// leap-year/days-in-month helpers, per spec.md §4.3.6.
func Time() interp.Library {
	funcs := map[string]interp.NativeFunc{
		"now": func(args []interp.Value) (interp.Value, error) {
			return interp.Number(float64(time.Now().UnixMilli())), nil
		},
		"timestamp": func(args []interp.Value) (interp.Value, error) {
			return interp.Number(float64(time.Now().Unix())), nil
		},
		"format":        timeFormat,
		"diff":          timeDiff,
		"sleep":         timeSleep,
		"date_parts":    dateParts,
		"add":           timeAdd,
		"subtract":      timeSubtract,
		"is_leap_year":  isLeapYear,
		"days_in_month": daysInMonth,
	}
	return interp.NewLibrary("time", funcs)
}

func timeFormat(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "format", 2, len(args))
	}
	var ts int64
	var format string
	if len(args) == 1 {
		ts = time.Now().Unix()
		format = args[0].ToString()
	} else {
		ts = int64(args[0].ToNumber())
		format = args[1].ToString()
	}
	t := time.Unix(ts, 0).UTC()
	return interp.String(strftime(t, format)), nil
}

func timeDiff(args []interp.Value) (interp.Value, error) {
	if len(args) != 2 {
		return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "diff", 2, len(args))
	}
	return interp.Number(args[1].ToNumber() - args[0].ToNumber()), nil
}

func timeSleep(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "sleep", 1, len(args))
	}
	time.Sleep(time.Duration(args[0].ToNumber()) * time.Millisecond)
	return interp.Number(0), nil
}

func dateParts(args []interp.Value) (interp.Value, error) {
	if len(args) > 1 {
		return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "date_parts", 1, len(args))
	}
	var t time.Time
	if len(args) == 0 {
		t = time.Now().UTC()
	} else {
		t = time.Unix(int64(args[0].ToNumber()), 0).UTC()
	}
	obj := interp.NewObject()
	obj.Set("year", interp.Number(float64(t.Year())))
	obj.Set("month", interp.Number(float64(int(t.Month()))))
	obj.Set("day", interp.Number(float64(t.Day())))
	obj.Set("hour", interp.Number(float64(t.Hour())))
	obj.Set("minute", interp.Number(float64(t.Minute())))
	obj.Set("second", interp.Number(float64(t.Second())))
	obj.Set("weekday", interp.Number(float64(int(t.Weekday()))))
	obj.Set("yearday", interp.Number(float64(t.YearDay())))
	return interp.Object(obj), nil
}

// unitAmount normalizes the unit argument (singular or plural) into
// the (years, months, days, hours, minutes, seconds) delta passed to
// time.AddDate/time.Add, matching TimeLibrary.cpp's accepted spellings.
func unitAmount(unit string, amount int) (years, months, days int, dur time.Duration, err *rxerr.Error) {
	switch strings.TrimSuffix(unit, "s") {
	case "year":
		return amount, 0, 0, 0, nil
	case "month":
		return 0, amount, 0, 0, nil
	case "day":
		return 0, 0, amount, 0, nil
	case "hour":
		return 0, 0, 0, time.Duration(amount) * time.Hour, nil
	case "minute":
		return 0, 0, 0, time.Duration(amount) * time.Minute, nil
	case "second":
		return 0, 0, 0, time.Duration(amount) * time.Second, nil
	default:
		return 0, 0, 0, 0, rxerr.InvalidArgument(token.Position{}, "unknown time unit %q", unit)
	}
}

func timeAdd(args []interp.Value) (interp.Value, error) {
	if len(args) != 3 {
		return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "add", 3, len(args))
	}
	return shiftTimestamp(args, 1)
}

func timeSubtract(args []interp.Value) (interp.Value, error) {
	if len(args) != 3 {
		return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "subtract", 3, len(args))
	}
	return shiftTimestamp(args, -1)
}

// shiftTimestamp implements both add() and subtract(): month overflow
// carries into year automatically via time.AddDate's normalization.
func shiftTimestamp(args []interp.Value, sign int) (interp.Value, error) {
	ts := int64(args[0].ToNumber())
	amount := int(args[1].ToNumber()) * sign
	unit := args[2].ToString()

	years, months, days, dur, err := unitAmount(unit, amount)
	if err != nil {
		return interp.Value{}, err
	}
	t := time.Unix(ts, 0).UTC().AddDate(years, months, days).Add(dur)
	return interp.Number(float64(t.Unix())), nil
}

func isLeapYear(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "is_leap_year", 1, len(args))
	}
	y := int(args[0].ToNumber())
	leap := (y%4 == 0 && y%100 != 0) || y%400 == 0
	if leap {
		return interp.Number(1), nil
	}
	return interp.Number(0), nil
}

func daysInMonth(args []interp.Value) (interp.Value, error) {
	if len(args) != 2 {
		return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "days_in_month", 2, len(args))
	}
	y := int(args[0].ToNumber())
	m := int(args[1].ToNumber())
	if m < 1 || m > 12 {
		return interp.Value{}, rxerr.InvalidArgument(token.Position{}, "month %d out of range [1,12]", m)
	}
	// Day 0 of the following month is the last day of month m.
	firstOfNext := time.Date(y, time.Month(m)+1, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfNext.AddDate(0, 0, -1)
	return interp.Number(float64(lastDay.Day())), nil
}

// strftime implements the small subset of C strftime directives
// needed for round-tripping via format(), per spec.md §8's testable
// property.
func strftime(t time.Time, format string) string {
	var sb strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			sb.WriteByte(format[i])
			continue
		}
		i++
		switch format[i] {
		case 'Y':
			sb.WriteString(pad(t.Year(), 4))
		case 'm':
			sb.WriteString(pad(int(t.Month()), 2))
		case 'd':
			sb.WriteString(pad(t.Day(), 2))
		case 'H':
			sb.WriteString(pad(t.Hour(), 2))
		case 'M':
			sb.WriteString(pad(t.Minute(), 2))
		case 'S':
			sb.WriteString(pad(t.Second(), 2))
		case '%':
			sb.WriteByte('%')
		default:
			sb.WriteByte('%')
			sb.WriteByte(format[i])
		}
	}
	return sb.String()
}

func pad(n, width int) string {
	s := itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
