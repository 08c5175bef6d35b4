package config

import "github.com/seiskit/sofiprep/decomp"

// Config is a complete SOFI2D parameter set, grouped into the sections the
// solver's reference file documents, in its canonical order.
type Config struct {
	Domain      DomainDecomposition
	FD          FDOrder
	Grid        Grid2D
	Time        TimeStepping
	WaveEq      WaveEquation
	Source      Source
	Sigout      Sigout
	Model       Model
	Q           QApproximation
	Boundary    Boundary
	Snapshots   Snapshots
	Receiver    Receiver
	Seismograms Seismograms
	Logging     Logging
}

// Default builds a complete configuration with the solver's documented
// defaults. The grid parameters are mandatory: nx and ny are the padded
// sample counts (SOFI2D calls the vertical axis Y), dh the uniform spacing
// in meters.
func Default(nx, ny int, dh float64) Config {
	return Config{
		Domain: DomainDecomposition{NProcX: 1, NProcY: 1},
		FD:     FDOrder{Order: 4, OrderTime: 2, MaxRelError: 0},
		Grid:   Grid2D{NX: nx, NY: ny, DH: dh},
		Time:   TimeStepping{Time: 2.0, DT: 0.001},
		WaveEq: WaveEquation{WEQ: "EL_ISO"},
		Source: Source{
			Shape:            1,
			SignalFile:       "signal_mseis.tz",
			Type:             1,
			SrcRec:           1,
			SourceFile:       "./Geom/source.dat",
			RunMultipleShots: 1,
			PlaneWaveDepth:   2106.0,
			PlaneWaveAngle:   0.0,
			TS:               0.2,
		},
		Sigout: Sigout{Sigout: 1, File: "./OUTPUT/shot", Format: 3},
		Model:  Model{ReadMod: 1, MFile: "./model/SEAM", WriteModelFiles: 0},
		Q:      QApproximation{L: 0, FRef: 50.0, FL1: 50.0},
		Boundary: Boundary{
			FreeSurf: 1,
			Boundary: 0,
			FW:       40,
			AbsType:  1,
			NPower:   4.0,
			KMaxCPML: 1.0,
			VPPML:    4800.0,
			FPML:     30.0,
			Damping:  8.0,
		},
		Snapshots: Snapshots{
			Snap:     1,
			TSnap1:   0.0,
			TSnap2:   0.0,
			TSnapInc: 0.04,
			IDX:      1,
			IDY:      1,
			Format:   3,
			File:     "./OUTPUT/snap",
		},
		Receiver: Receiver{
			Seismo:        4,
			ReadRec:       1,
			RecFile:       "./Geom/receiver.dat",
			RefRec:        "0.0 , 0.0",
			Rec1:          "100.0 , 15.0",
			Rec2:          "21850.0 , 1.0",
			NGeoph:        120,
			RecArray:      0,
			RecArrayDepth: 70.0,
			RecArrayDist:  40.0,
			DRX:           4,
		},
		Seismograms: Seismograms{NDT: 10, Format: 3, File: "./OUTPUT/seis"},
		Logging: Logging{
			LogFile:         "./log/sofi2d.log",
			Log:             0,
			Verbosity:       "INFO",
			OutTimestepInfo: 100,
		},
	}
}

// ApplyLayout folds the decomposer's chosen process grid into the
// domain-decomposition section.
func (c *Config) ApplyLayout(l decomp.Layout) {
	c.Domain.NProcX = l.ProcsX
	c.Domain.NProcY = l.ProcsZ
}

// Document assembles all sections, in canonical order, into one ordered
// key/value document ready for serialization.
func (c Config) Document() (*Document, error) {
	var d Document
	w := &docWriter{d: &d}
	for _, s := range []interface{ appendTo(*docWriter) }{
		c.Domain,
		c.FD,
		c.Grid,
		c.Time,
		c.WaveEq,
		c.Source,
		c.Sigout,
		c.Model,
		c.Q,
		c.Boundary,
		c.Snapshots,
		c.Receiver,
		c.Seismograms,
		c.Logging,
	} {
		s.appendTo(w)
	}
	if w.err != nil {
		return nil, w.err
	}

	return &d, nil
}

// WriteFile assembles the document and writes it as indented JSON to path.
func (c Config) WriteFile(path string) error {
	d, err := c.Document()
	if err != nil {
		return err
	}

	return d.WriteFile(path)
}
