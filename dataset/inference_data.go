package dataset

// InferenceData groups the related datasets of one inference run behind
// explicit optional fields. A nil field means the group is absent; helpers
// branch on field presence with plain guards rather than any reflective
// attribute probing.
type InferenceData struct {
	Posterior               *Dataset
	PosteriorPredictive     *Dataset
	Predictions             *Dataset
	Prior                   *Dataset
	PriorPredictive         *Dataset
	SampleStats             *Dataset
	ObservedData            *Dataset
	ConstantData            *Dataset
	PredictionsConstantData *Dataset
}

// PredictionsDims returns per-variable dimension lists for prediction-type
// data. When dims is non-nil it is returned unchanged (caller override).
// Otherwise: posterior-predictive variables contribute their free dims
// (beyond chain/draw), observed and constant data contribute their full
// dims. Later groups overwrite earlier entries on a name collision.
func (id *InferenceData) PredictionsDims(dims map[string][]string) map[string][]string {
	if dims != nil {
		return dims
	}
	dims = make(map[string][]string)
	if id.PosteriorPredictive != nil {
		for _, name := range id.PosteriorPredictive.Names() {
			da, _ := id.PosteriorPredictive.Var(name)
			if len(da.Dims) > 2 {
				free := make([]string, len(da.Dims)-2)
				copy(free, da.Dims[2:])
				dims[name] = free
			} else {
				dims[name] = []string{}
			}
		}
	}
	if id.ObservedData != nil {
		for _, name := range id.ObservedData.Names() {
			da, _ := id.ObservedData.Var(name)
			all := make([]string, len(da.Dims))
			copy(all, da.Dims)
			dims[name] = all
		}
	}
	if id.ConstantData != nil {
		for _, name := range id.ConstantData.Names() {
			da, _ := id.ConstantData.Var(name)
			all := make([]string, len(da.Dims))
			copy(all, da.Dims)
			dims[name] = all
		}
	}

	return dims
}

// PosteriorVarNames returns the posterior variable names, falling back to
// the prior group when no posterior is present. Empty when neither exists.
func (id *InferenceData) PosteriorVarNames() []string {
	if id.Posterior != nil {
		return id.Posterior.Names()
	}
	if id.Prior != nil {
		return id.Prior.Names()
	}

	return nil
}

// PosteriorChainsDraws reports the chain and draw counts, trying the
// posterior, sample-stats and posterior-predictive groups in that order.
// Returns (-1, -1) when no group can answer.
func (id *InferenceData) PosteriorChainsDraws() (chains, draws int) {
	for _, ds := range []*Dataset{id.Posterior, id.SampleStats, id.PosteriorPredictive} {
		if ds == nil {
			continue
		}
		c, okC := ds.DimLen(DimChain)
		d, okD := ds.DimLen(DimDraw)
		if okC && okD {
			return c, d
		}
	}

	return -1, -1
}
