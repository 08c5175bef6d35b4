package config

import (
	"strconv"
	"strings"
)

// itoa and ftoa render parameter values the way the SOFI2D reference files
// write them: integers bare, floats always with a decimal point.
func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// docWriter accumulates section entries, keeping only the first error.
type docWriter struct {
	d   *Document
	err error
}

func (w *docWriter) add(key, value string) {
	if w.err == nil {
		w.err = w.d.Add(key, value)
	}
}

func (w *docWriter) comment(text string) {
	if w.err == nil {
		w.err = w.d.Comment(text)
	}
}

// DomainDecomposition carries the MPI process grid (NPROCX × NPROCY).
type DomainDecomposition struct {
	NProcX int
	NProcY int
}

func (s DomainDecomposition) appendTo(w *docWriter) {
	w.comment("Domain Decomposition")
	w.add("NPROCX", itoa(s.NProcX))
	w.add("NPROCY", itoa(s.NProcY))
}

// FDOrder carries the finite-difference accuracy settings.
type FDOrder struct {
	Order       int
	OrderTime   int
	MaxRelError float64
}

func (s FDOrder) appendTo(w *docWriter) {
	w.comment("FD order")
	w.add("FDORDER", itoa(s.Order))
	w.add("FDORDER_TIME", itoa(s.OrderTime))
	w.add("MAXRELERROR", ftoa(s.MaxRelError))
}

// Grid2D carries the computational grid: sample counts and spacing.
// SOFI2D names the vertical axis Y in its parameter file.
type Grid2D struct {
	NX int
	NY int
	DH float64
}

func (s Grid2D) appendTo(w *docWriter) {
	w.comment("2-D Grid")
	w.add("NX", itoa(s.NX))
	w.add("NY", itoa(s.NY))
	w.add("DH", ftoa(s.DH))
}

// TimeStepping carries total simulated time and time-step length.
type TimeStepping struct {
	Time float64
	DT   float64
}

func (s TimeStepping) appendTo(w *docWriter) {
	w.comment("Time Stepping")
	w.add("TIME", ftoa(s.Time))
	w.add("DT", ftoa(s.DT))
}

// WaveEquation selects the wave-equation family.
type WaveEquation struct {
	WEQ string
}

func (s WaveEquation) appendTo(w *docWriter) {
	w.comment("Wave Equation")
	w.add("WEQ", s.WEQ)
	w.comment("WEQ values: AC_ISO, AC_VTI, AC_TTI")
	w.comment("WEQ values: VAC_ISO, VAC_VTI, VAC_TTI")
	w.comment("WEQ values: EL_ISO, EL_VTI, EL_TTI")
	w.comment("WEQ values: VEL_ISO, VEL_VTI, VEL_TTI")
}

// Source carries source excitation parameters.
type Source struct {
	Shape            int
	SignalFile       string
	Type             int
	SrcRec           int
	SourceFile       string
	RunMultipleShots int
	PlaneWaveDepth   float64
	PlaneWaveAngle   float64
	TS               float64
}

func (s Source) appendTo(w *docWriter) {
	w.comment("Source")
	w.add("SOURCE_SHAPE", itoa(s.Shape))
	w.comment("SOURCE_SHAPE values: ricker=1, fumue=2, file=3, sin3=4, berlage=5, klauder=6")
	w.add("SIGNAL_FILE", s.SignalFile)
	w.add("SOURCE_TYPE", itoa(s.Type))
	w.comment("SOURCE_TYPE values: explosive=1, fx=2, fy=3, custom=4")
	w.add("SRCREC", itoa(s.SrcRec))
	w.comment("SRCREC values: read from SOURCE_FILE=1, plane wave=2")
	w.add("SOURCE_FILE", s.SourceFile)
	w.add("RUN_MULTIPLE_SHOTS", itoa(s.RunMultipleShots))
	w.add("PLANE_WAVE_DEPTH", ftoa(s.PlaneWaveDepth))
	w.add("PLANE_WAVE_ANGLE", ftoa(s.PlaneWaveAngle))
	w.add("TS", ftoa(s.TS))
}

// Sigout controls source-wavelet output.
type Sigout struct {
	Sigout int
	File   string
	Format int
}

func (s Sigout) appendTo(w *docWriter) {
	w.add("SIGOUT", itoa(s.Sigout))
	w.comment("Output source wavelet: yes=1, no=else")
	w.add("SIGOUT_FILE", s.File)
	w.add("SIGOUT_FORMAT", itoa(s.Format))
	w.comment("Supported formats: SU=1, ASCII=2, BINARY=3")
}

// Model points the solver at the velocity/density model files.
type Model struct {
	ReadMod         int
	MFile           string
	WriteModelFiles int
}

func (s Model) appendTo(w *docWriter) {
	w.comment("Model")
	w.add("READMOD", itoa(s.ReadMod))
	w.add("MFILE", s.MFile)
	w.add("WRITE_MODELFILES", itoa(s.WriteModelFiles))
}

// QApproximation carries the viscoelastic Q approximation.
type QApproximation struct {
	L    int
	FRef float64
	FL1  float64
}

func (s QApproximation) appendTo(w *docWriter) {
	w.comment("Q-approximation")
	w.add("L", itoa(s.L))
	w.add("F_REF", ftoa(s.FRef))
	w.add("FL1", ftoa(s.FL1))
}

// Boundary carries free-surface and absorbing-frame settings. FW is the
// frame width in samples — the same value the decomposer consumes as
// boundaryWidth.
type Boundary struct {
	FreeSurf int
	Boundary int
	FW       int
	AbsType  int
	NPower   float64
	KMaxCPML float64
	VPPML    float64
	FPML     float64
	Damping  float64
}

func (s Boundary) appendTo(w *docWriter) {
	w.comment("Boundary")
	w.add("FREE_SURF", itoa(s.FreeSurf))
	w.add("BOUNDARY", itoa(s.Boundary))
	w.add("FW", itoa(s.FW))
	w.add("ABS_TYPE", itoa(s.AbsType))
	w.comment("ABS_TYPE values: CPML=1, damping=2")
	w.comment("CPML parameters")
	w.add("NPOWER", ftoa(s.NPower))
	w.add("K_MAX_CPML", ftoa(s.KMaxCPML))
	w.add("VPPML", ftoa(s.VPPML))
	w.add("FPML", ftoa(s.FPML))
	w.comment("Damping boundary parameters")
	w.add("DAMPING", ftoa(s.Damping))
}

// Snapshots controls wavefield snapshot output. The three times are
// written with six decimals, matching the solver's reference files.
type Snapshots struct {
	Snap     int
	TSnap1   float64
	TSnap2   float64
	TSnapInc float64
	IDX      int
	IDY      int
	Format   int
	File     string
}

func (s Snapshots) appendTo(w *docWriter) {
	w.comment("Snapshots")
	w.add("SNAP", itoa(s.Snap))
	w.add("TSNAP1", strconv.FormatFloat(s.TSnap1, 'f', 6, 64))
	w.add("TSNAP2", strconv.FormatFloat(s.TSnap2, 'f', 6, 64))
	w.add("TSNAPINC", strconv.FormatFloat(s.TSnapInc, 'f', 6, 64))
	w.add("IDX", itoa(s.IDX))
	w.add("IDY", itoa(s.IDY))
	w.add("SNAP_FORMAT", itoa(s.Format))
	w.add("SNAP_FILE", s.File)
}

// Receiver carries receiver geometry and recording options.
type Receiver struct {
	Seismo        int
	ReadRec       int
	RecFile       string
	RefRec        string
	Rec1          string
	Rec2          string
	NGeoph        int
	RecArray      int
	RecArrayDepth float64
	RecArrayDist  float64
	DRX           int
}

func (s Receiver) appendTo(w *docWriter) {
	w.comment("Receiver")
	w.add("SEISMO", itoa(s.Seismo))
	w.add("READREC", itoa(s.ReadRec))
	w.add("REC_FILE", s.RecFile)
	w.add("REFRECX, REFRECY", s.RefRec)
	w.add("XREC1,YREC1", s.Rec1)
	w.add("XREC2,YREC2", s.Rec2)
	w.add("NGEOPH", itoa(s.NGeoph))
	w.comment("Receiver array")
	w.add("REC_ARRAY", itoa(s.RecArray))
	w.add("REC_ARRAY_DEPTH", ftoa(s.RecArrayDepth))
	w.add("REC_ARRAY_DIST", ftoa(s.RecArrayDist))
	w.add("DRX", itoa(s.DRX))
}

// Seismograms controls seismogram output.
type Seismograms struct {
	NDT    int
	Format int
	File   string
}

func (s Seismograms) appendTo(w *docWriter) {
	w.comment("Seismograms")
	w.add("NDT", itoa(s.NDT))
	w.add("SEIS_FORMAT", itoa(s.Format))
	w.add("SEIS_FILE", s.File)
}

// Logging carries the solver's runtime logging options (this toolkit
// itself does not log; these fields configure the simulation run).
type Logging struct {
	LogFile         string
	Log             int
	Verbosity       string
	OutTimestepInfo int
}

func (s Logging) appendTo(w *docWriter) {
	w.comment("Monitoring the simulation")
	w.add("LOG_FILE", s.LogFile)
	w.add("LOG", itoa(s.Log))
	w.add("LOG_VERBOSITY", s.Verbosity)
	w.add("OUT_TIMESTEP_INFO", itoa(s.OutTimestepInfo))
}
