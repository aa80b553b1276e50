package simulation

// Default trial parameters of the simulator. They reproduce the canonical
// experiment of ten thousand visitors converting at a rate of ten percent.
const (
	DefaultVisitors    = 10000   // visitors (trials) per experiment
	DefaultRate        = 0.1     // success rate of a single visitor
	DefaultExperiments = 1000000 // number of simulated experiments
)

// NumECDFPoints sets the number of points in the empirical cumulative distribution function.
const NumECDFPoints = 300

// NumDensityPoints sets the number of grid points of a kernel density estimate.
const NumDensityPoints = 250

// NumConvergencePoints sets the number of prefix sizes at which the running
// empirical estimate of an interval is recorded.
const NumConvergencePoints = 200

// DefaultIntervalMargin sets the relative distance of the default interval
// bounds from the expected number of successes.
const DefaultIntervalMargin = 0.05
