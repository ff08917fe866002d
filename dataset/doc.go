// Package dataset loads the observations fed to the regression engine.
//
// A dataset file is a JSON array of objects, optionally compressed (see the
// compress package). Two numeric fields of every object become the x and y
// coordinates of a sample point; by default these are the dew point and the
// relative humidity of daily weather observations:
//
//	[
//	  {"date": "2018-01-01", "dewPoint": 13.92, "humidity": 0.57, ...},
//	  {"date": "2018-01-02", "dewPoint": 19.79, "humidity": 0.6, ...}
//	]
//
// Only the first Limit records are used (10 by default). This is a plain
// truncation in file order, not random sampling. Records past the limit are
// not validated.
//
// # Usage
//
//	ds, err := dataset.Load("my_weather_data.json.zst")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model, err := regression.FitSample(ds.Sample())
package dataset
