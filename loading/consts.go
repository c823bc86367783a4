package loading

const (
	// ContainerID identifies the placeholder so the error view can replace it.
	ContainerID = "spa-loading"

	pluginName = "spa-loading"
)

// internalCSS takes the animation duration and delay in milliseconds.
const internalCSS = `
      <style id="internal-css">
        .spa-loading-error {
          color: #b75555;
        }
        .loading-container {
          opacity: 0;
          animation: fade-in %[1]sms linear %[2]sms forwards;
          -moz-animation: fade-in %[1]sms linear %[2]sms forwards;
          -webkit-animation: fade-in %[1]sms linear %[2]sms forwards;
          position: absolute;
          top: 0;
          left: 0;
          width: 100vw;
          height: 100vh;
          display: flex;
          justify-content: center;
          flex-direction: column;
          align-items: center;
        }
        @keyframes fade-in {
          0%% {
            opacity: 0;
          }
          100%% {
            opacity: 1;
          }
        }
        @-moz-keyframes fade-in {
          0%% {
            opacity: 0;
          }
          100%% {
            opacity: 1;
          }
        }
        @-webkit-keyframes fade-in {
          0%% {
            opacity: 0;
          }
          100%% {
            opacity: 1;
          }
        }
      </style>`

// errorCapture takes the callback expression, the container id and the error
// tip, the last two as JS string literals.
const errorCapture = `try {
  var onError = (%s);
  var errorSourceList = [];
  var frame = 0;
  var renderError = function (errorList) {
    var container = document.getElementById(%s);
    if (container) {
      container.innerHTML =
        '<pre class="spa-loading-error">' + %s + '\n\n' + errorList.join('\n') + '</pre>';
    }
  };
  window.addEventListener(
    'error',
    function (event) {
      try {
        if (event instanceof ErrorEvent) {
          return;
        }
        var target = event.target || event.srcElement;
        if (!(target instanceof HTMLElement) || ['LINK', 'SCRIPT'].indexOf(target.nodeName) === -1) {
          return;
        }
        var src = target.src || target.href;
        if (window.location.href.indexOf(src) === 0) {
          return;
        }
        errorSourceList.push('GET - ' + src + ' - net::ERR_ABORTED 404 (Not Found)');
        if (frame) {
          window.cancelAnimationFrame(frame);
        }
        frame = window.requestAnimationFrame(function () {
          frame = 0;
          try {
            renderError(errorSourceList);
            onError(errorSourceList);
          } catch (err) {}
        });
      } catch (err) {}
    },
    true
  );
} catch (err) {}`

const noopHandler = `function () {}`

// retryHandler takes the maximum number of page loads.
const retryHandler = `function (errors) {
    var matched = window.location.search.match(/slr=(\d+)/);
    var reloadNum = matched ? +matched[1] : 1;
    if (reloadNum < %d) {
      window.location.search = 'slt=' + Date.now() + '&slr=' + (reloadNum + 1);
    }
  }`
